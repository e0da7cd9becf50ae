package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/application/ingest"
	"github.com/Crokily/aibuild-dashboard/internal/domain"
)

// UploadHandler maneja la carga de hojas de cálculo de inventario.
type UploadHandler struct {
	uc *ingest.UploadUseCase
}

// NewUploadHandler construye el handler de carga.
func NewUploadHandler(uc *ingest.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Cargar hoja de cálculo de inventario
// @Description  Valida el archivo completo y reemplaza el ledger de cada producto
//               incluido. Todo-o-nada: un archivo con errores no modifica la base.
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	summary, err := h.uc.Execute(c.Context(), fileHeader.Filename, content)
	if err != nil {
		var vErr *ingest.ValidationError
		switch {
		case errors.As(err, &vErr):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: vErr.Error(), Details: vErr.Details,
			})
		case errors.Is(err, ingest.ErrNoData):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: ingest.ErrNoData.Error()})
		case errors.Is(err, ingest.ErrUnsupportedFile):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FILE", Message: ingest.ErrUnsupportedFile.Error()})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "carga concurrente sobre los mismos productos; reintente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	return c.JSON(dto.UploadResponse{Success: true, Summary: *summary})
}
