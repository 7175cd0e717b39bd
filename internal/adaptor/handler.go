package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"laundry-service/internal/usecase"
	"laundry-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	Order *OrderHandler
	Admin *AdminHandler
}

func NewHandler(service *usecase.Service, codec *utils.SessionCodec, appName string, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, codec, appName, log),
		Order: NewOrderHandler(service.Order, log),
		Admin: NewAdminHandler(service.Admin, log),
	}
}

const maxFormBytes = 1 << 20

// formBinder is implemented by request DTOs that can be filled from an HTML form.
type formBinder interface {
	BindForm(form url.Values)
}

// decodeRequest fills dst from a JSON body or from url-encoded / multipart
// form fields, depending on the Content-Type.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst formBinder) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(dst); err != nil {
			return fmt.Errorf("decode json body: %w", err)
		}
		return nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			return fmt.Errorf("parse multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	dst.BindForm(r.PostForm)
	return nil
}

// pathID reads a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, chi.URLParam(r, name))
	}
	return id, nil
}

// handleServiceError maps an error kind to a status code. Storage failures
// are logged with their cause and shown with a generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, resp utils.Response) {
	resp.Status = false

	switch {
	case errors.Is(err, utils.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		resp.Message = utils.ErrorMessage(err, "Validation failed")
		if fields := utils.ErrorFields(err); len(fields) > 0 {
			resp.Errors = fields
		}
		utils.ResponseJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, utils.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		resp.Message = utils.ErrorMessage(err, "Resource already exists")
		utils.ResponseJSON(w, http.StatusConflict, resp)

	case errors.Is(err, utils.ErrAuth):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		resp.Message = utils.ErrorMessage(err, "Invalid credentials")
		utils.ResponseJSON(w, http.StatusUnauthorized, resp)

	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		resp.Message = utils.ErrorMessage(err, "Not found")
		utils.ResponseJSON(w, http.StatusNotFound, resp)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		resp.Message = utils.ErrorMessage(err, "Internal server error")
		utils.ResponseJSON(w, http.StatusInternalServerError, resp)
	}
}
