package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"laundry-service/internal/data/repository"
	"laundry-service/internal/dto/request"
	"laundry-service/internal/usecase"
	"laundry-service/pkg/utils"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const minAdminPasswordLen = 6

// laundry create-admin
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Interactively create an admin user",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := boot()
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "--- Create New Admin User ---")

		p := newPrompter(os.Stdin, out)
		req, err := p.adminRequest()
		if err != nil {
			return err
		}

		auth := usecase.NewAuthService(repository.NewRepository(rt.executor, rt.logger), rt.logger)
		user, err := auth.CreateAdmin(context.Background(), req)
		if err != nil {
			if errors.Is(err, utils.ErrConflict) {
				return fmt.Errorf("username %q or email %q already exists", req.Username, req.Email)
			}
			return fmt.Errorf("admin user creation failed: %w", err)
		}

		fmt.Fprintf(out, "Admin user '%s' created successfully with user_id: %d!\n", user.Username, user.ID)
		return nil
	},
}

// prompter reads answers line by line; secrets are read without echo when
// the input is a terminal.
type prompter struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)
}

func newPrompter(in *os.File, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out}
	if fd := int(in.Fd()); term.IsTerminal(fd) {
		p.readSecret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(out)
			return string(b), err
		}
	}
	return p
}

func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.out, "Enter admin %s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) secret(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if p.readSecret != nil {
		return p.readSecret()
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// adminRequest collects the profile, then asks for the password until both
// entries match and are long enough.
func (p *prompter) adminRequest() (*request.CreateAdminRequest, error) {
	req := &request.CreateAdminRequest{}
	fields := []struct {
		label string
		dst   *string
	}{
		{"username", &req.Username},
		{"email", &req.Email},
		{"first name", &req.FirstName},
		{"last name", &req.LastName},
		{"phone number", &req.Phone},
		{"address", &req.Address},
	}
	for _, f := range fields {
		v, err := p.ask(f.label)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	for {
		password, err := p.secret("Enter admin password: ")
		if err != nil {
			return nil, err
		}
		confirm, err := p.secret("Confirm admin password: ")
		if err != nil {
			return nil, err
		}

		if password != confirm {
			fmt.Fprintln(p.out, "Passwords do not match. Please try again.")
			continue
		}
		if len(password) < minAdminPasswordLen {
			fmt.Fprintf(p.out, "Password must be at least %d characters long.\n", minAdminPasswordLen)
			continue
		}

		req.Password = password
		req.ConfirmPassword = confirm
		return req, nil
	}
}
