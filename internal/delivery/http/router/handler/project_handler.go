package handler

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"atelier/internal/delivery/http/middleware"
	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProjectHandler serves the admin catalog mutation endpoints. Requests
// are multipart: a "project" JSON part describing the entry plus the
// binary files it references under "files".
type ProjectHandler struct {
	uc usecase.ProjectAdminUsecase
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectAdminUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// assetPayload references one asset: either an already-stored URL or
// the filename of a file part in the same request.
type assetPayload struct {
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// projectPayload is the "project" JSON part of an admin submission.
type projectPayload struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Category string                  `json:"category"`
	Price    float64                 `json:"price"`
	TotalMP  float64                 `json:"totalMP"`
	UsableMP float64                 `json:"usableMP"`
	Images   []assetPayload          `json:"images"`
	Floors   []entity.Floor          `json:"floors"`
	Plans    map[string]assetPayload `json:"plans"`
}

// CreateProject handles the admin create request.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	input, err := h.bindProjectInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	createdBy, _ := c.Get(middleware.ContextEmailKey).(string)

	result, err := h.uc.CreateProject(c.Request().Context(), input, createdBy)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Proiectul a fost salvat.")
}

// UpdateProject handles the admin update request.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	input, err := h.bindProjectInput(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	result, err := h.uc.UpdateProject(c.Request().Context(), c.Param("docID"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Proiectul a fost salvat.")
}

// DeleteProject handles the admin delete request.
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	result, err := h.uc.DeleteProject(c.Request().Context(), c.Param("docID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Proiectul a fost șters.")
}

// bindProjectInput parses the multipart submission into a ProjectInput,
// resolving filename references against the uploaded file parts.
func (h *ProjectHandler) bindProjectInput(c echo.Context) (*usecase.ProjectInput, error) {
	payloadRaw := c.FormValue("project")
	if payloadRaw == "" {
		return nil, errors.New("missing project part")
	}

	var payload projectPayload
	if err := json.Unmarshal([]byte(payloadRaw), &payload); err != nil {
		return nil, errors.Wrap(err, "invalid project JSON")
	}

	category := entity.Category(payload.Category)
	if !category.Valid() {
		return nil, errors.Errorf("unknown category: %s", payload.Category)
	}

	files, err := filePartsByName(c)
	if err != nil {
		return nil, err
	}

	images := make([]entity.AssetRef, 0, len(payload.Images))
	for _, asset := range payload.Images {
		ref, err := resolveAsset(asset, files)
		if err != nil {
			return nil, err
		}
		images = append(images, ref)
	}

	plans := make(map[entity.FloorType]entity.AssetRef, len(payload.Plans))
	for floorType, asset := range payload.Plans {
		ref, err := resolveAsset(asset, files)
		if err != nil {
			return nil, err
		}
		plans[entity.FloorType(floorType)] = ref
	}

	return &usecase.ProjectInput{
		ID:       payload.ID,
		Name:     payload.Name,
		Category: category,
		Price:    payload.Price,
		TotalMP:  payload.TotalMP,
		UsableMP: payload.UsableMP,
		Images:   images,
		Floors:   payload.Floors,
		Plans:    plans,
	}, nil
}

// filePartsByName indexes the request's "files" parts by filename.
func filePartsByName(c echo.Context) (map[string]*multipart.FileHeader, error) {
	files := make(map[string]*multipart.FileHeader)

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, errors.New("request must be multipart/form-data")
		}

		return nil, errors.Wrap(err, "invalid multipart form")
	}

	for _, fh := range form.File["files"] {
		files[fh.Filename] = fh
	}

	return files, nil
}

// resolveAsset turns one payload reference into an AssetRef, reading
// the file part for pending assets.
func resolveAsset(asset assetPayload, files map[string]*multipart.FileHeader) (entity.AssetRef, error) {
	if asset.URL != "" {
		return entity.StoredAsset(asset.URL), nil
	}

	if asset.Filename == "" {
		return entity.AssetRef{}, errors.New("asset needs either url or filename")
	}

	fh, ok := files[asset.Filename]
	if !ok {
		return entity.AssetRef{}, errors.Errorf("file part missing for %s", asset.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return entity.AssetRef{}, errors.Wrapf(err, "failed to open file part %s", asset.Filename)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return entity.AssetRef{}, errors.Wrapf(err, "failed to read file part %s", asset.Filename)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return entity.PendingAsset(fh.Filename, content, contentType), nil
}
