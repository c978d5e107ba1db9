package httpx

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/errs"
)

// FormFile reads the named multipart file. ok is false when the request
// carries no such part.
func FormFile(c fiber.Ctx, name string) (data []byte, ok bool, err error) {
	fh, ferr := c.FormFile(name)
	if ferr != nil {
		return nil, false, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, true, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "unreadable upload"})
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, true, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "unreadable upload"})
	}
	return data, true, nil
}

// DecodeBase64 accepts plain base64 and data URLs.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ","); strings.HasPrefix(s, "data:") && i > 0 {
		s = s[i+1:]
	}
	if s == "" {
		return nil, errs.Validation("Missing workbook.")
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "workbook is not valid base64"})
	}
	return data, nil
}
