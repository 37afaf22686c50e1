package public

import (
	"github.com/art-exhibition/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadImage 上传图片（multipart 字段 file，?scene= 指定场景）
func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.file_missing", nil)
		return
	}
	result, err := h.UploadService.SaveFile(file, c.Query("scene"))
	if err != nil {
		respondWithMappedError(c, err, uploadErrorRules, response.CodeInternal, "error.upload_failed")
		return
	}
	response.Created(c, result)
}
