package handler

import (
	"errors"
	"net/http"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const uploadField = "file"

func (h *Handler) Upload(c *ginext.Context) {
	if _, ok := h.session(c); !ok {
		return
	}

	fh, err := c.FormFile(uploadField)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.handleError(c, domain.ErrFileTooLarge)
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "multipart field \"file\" is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	url, err := h.uploadService.Upload(c.Request.Context(), fh.Size, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}
