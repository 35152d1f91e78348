package http

import (
	"mime"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/attachment"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AssetHandler maneja activos fijos, su adjunto, la etiqueta y la exportación.
type AssetHandler struct {
	uc           *usecase.AssetUseCase
	attachmentUC *attachment.UseCase
	reportUC     *reporting.UseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase, attachmentUC *attachment.UseCase, reportUC *reporting.UseCase) *AssetHandler {
	return &AssetHandler{uc: uc, attachmentUC: attachmentUC, reportUC: reportUC}
}

// Create godoc
// @Summary      Crear activo fijo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "Datos del activo"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener activo por ID
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar activos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        branch_id     query  string  false  "Filtrar por sede"
// @Param        category      query  string  false  "Filtrar por categoría"
// @Param        search        query  string  false  "Nombre o código"
// @Param        active        query  bool    false  "Solo activos / inactivos"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200           {object}  dto.AssetListResponse
// @Failure      400           {object}  dto.ErrorResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	q, err := assetQuery(c)
	if err != nil {
		return validationError(c, err.Error())
	}
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), q, page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del activo"
// @Param        body  body  dto.UpdateAssetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar activo (borra también su adjunto)
// @Tags         assets
// @Security     Bearer
// @Param        id   path  string  true  "ID del activo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadAttachment godoc
// @Summary      Subir adjunto (reemplaza el anterior)
// @Tags         assets
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID del activo"
// @Param        file  formData  file    true  "Archivo"
// @Success      201   {object}  dto.AttachmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/attachment [post]
func (h *AssetHandler) UploadAttachment(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return validationError(c, "el campo file es requerido")
	}
	f, err := fh.Open()
	if err != nil {
		return invalidBody(c)
	}
	defer f.Close()

	out, err := h.attachmentUC.Upload(c.UserContext(), c.Params("id"), attachment.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     f,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadAttachment godoc
// @Summary      Descargar adjunto
// @Tags         assets
// @Security     Bearer
// @Produce      octet-stream
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/attachment [get]
func (h *AssetHandler) DownloadAttachment(c *fiber.Ctx) error {
	d, err := h.attachmentUC.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, d.Attachment.ContentType)
	c.Set(fiber.HeaderContentDisposition, contentDisposition("attachment", d.Attachment.Filename))
	c.Set("X-Content-SHA256", d.Attachment.SHA256)
	// fasthttp cierra Body al terminar de enviarlo.
	return c.SendStream(d.Body, int(d.Attachment.SizeBytes))
}

// DeleteAttachment godoc
// @Summary      Eliminar adjunto
// @Tags         assets
// @Security     Bearer
// @Param        id   path  string  true  "ID del activo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/attachment [delete]
func (h *AssetHandler) DeleteAttachment(c *fiber.Ctx) error {
	if err := h.attachmentUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Label godoc
// @Summary      Etiqueta PDF con código de barras
// @Tags         assets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del activo"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/label [get]
func (h *AssetHandler) Label(c *fiber.Ctx) error {
	pdf, filename, err := h.reportUC.AssetLabel(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, contentDisposition("inline", filename))
	return c.Send(pdf)
}

// Export godoc
// @Summary      Exportar activos a Excel
// @Tags         assets
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        branch_id     query  string  false  "Filtrar por sede"
// @Param        category      query  string  false  "Filtrar por categoría"
// @Param        search        query  string  false  "Nombre o código"
// @Param        active        query  bool    false  "Solo activos / inactivos"
// @Success      200           {file}    file
// @Router       /api/assets/export [get]
func (h *AssetHandler) Export(c *fiber.Ctx) error {
	q, err := assetQuery(c)
	if err != nil {
		return validationError(c, err.Error())
	}
	data, filename, err := h.reportUC.ExportAssets(c.UserContext(), entity.AssetFilter{
		WarehouseID: q.WarehouseID,
		BranchID:    q.BranchID,
		Category:    q.Category,
		Search:      q.Search,
		Active:      q.Active,
	})
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, contentDisposition("attachment", filename))
	return c.Send(data)
}

func assetQuery(c *fiber.Ctx) (dto.AssetListQuery, error) {
	q := dto.AssetListQuery{
		WarehouseID: strings.TrimSpace(c.Query("warehouse_id")),
		BranchID:    strings.TrimSpace(c.Query("branch_id")),
		Category:    strings.TrimSpace(c.Query("category")),
		Search:      strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return q, &fiber.Error{Code: fiber.StatusBadRequest, Message: "active debe ser true o false"}
		}
		q.Active = &v
	}
	return q, nil
}

// contentDisposition arma el header con el nombre original (RFC 2231 si no es ASCII).
func contentDisposition(kind, filename string) string {
	if v := mime.FormatMediaType(kind, map[string]string{"filename": filename}); v != "" {
		return v
	}
	return kind
}
