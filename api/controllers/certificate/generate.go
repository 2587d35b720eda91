package certificate_controller

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/quick-cert-api/common/util"
	"github.com/sunthewhat/quick-cert-api/internal/renderer"
	"github.com/sunthewhat/quick-cert-api/type/apperror"
	"github.com/sunthewhat/quick-cert-api/type/payload"
	"github.com/sunthewhat/quick-cert-api/type/response"
	"github.com/sunthewhat/quick-cert-api/type/shared/model"
)

const HeaderCertificateId = "X-Certificate-Id"

func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	body := new(payload.GenerateCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		slog.Warn("Generate certificate failed to parse form", "error", err)
		return response.SendTextError(c, apperror.Validation("Failed to parse form"))
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendTextError(c, apperror.Validation(errors[0]))
	}

	logoPath, err := ctrl.saveUpload(c, "logo")
	if err != nil {
		return response.SendTextError(c, err)
	}

	signaturePath, err := ctrl.saveUpload(c, "signature")
	if err != nil {
		return response.SendTextError(c, err)
	}

	ctx := c.UserContext()

	result, err := ctrl.renderer.Render(ctx, renderer.Fields{
		Category:      body.CertType,
		Name:          body.Name,
		Course:        body.Course,
		Date:          body.Date,
		CustomTitle:   body.CustomTitle,
		PositionType:  body.PositionType,
		PositionValue: body.PositionValue,
		LogoPath:      logoPath,
		SignaturePath: signaturePath,
	})
	if err != nil {
		slog.Error("Certificate rendering failed", "cert_type", body.CertType, "error", err)
		return response.SendTextError(c, err)
	}

	cert := &model.Certificate{
		ID:            result.ID,
		Name:          body.Name,
		Course:        body.Course,
		Date:          body.Date,
		CertType:      body.CertType,
		PositionType:  body.PositionType,
		PositionValue: body.PositionValue,
		CustomTitle:   body.CustomTitle,
		PdfPath:       result.Path,
		CreatedAt:     time.Now(),
	}

	if ctrl.archive != nil {
		url, err := ctrl.archive.UploadPDF(ctx, result.ID+".pdf", result.Path)
		if err != nil {
			slog.Error("Certificate archive upload failed", "cert_id", result.ID, "error", err)
			return response.SendTextError(c, apperror.Unavailable("failed to archive certificate", err))
		}
		cert.ArchiveURL = url
	}

	if err := ctrl.certRepo.Create(ctx, cert); err != nil {
		slog.Error("Error saving certificate record", "cert_id", result.ID, "error", err)
		return response.SendTextError(c, err)
	}

	if ctrl.mailer != nil && body.Email != "" {
		if err := ctrl.mailer.SendCertificate(body.Email, result.ID, result.Path); err != nil {
			slog.Error("Certificate mail delivery failed", "cert_id", result.ID, "recipient", body.Email, "error", err)
		} else {
			slog.Info("Certificate mailed", "cert_id", result.ID, "recipient", body.Email)
		}
	}

	slog.Info("Certificate generated", "cert_id", result.ID, "cert_type", body.CertType, "category", result.Category.String())

	c.Set(HeaderCertificateId, result.ID)
	return c.Download(result.Path, result.ID+".pdf")
}

// saveUpload stores the named file part, returning "" when it was not sent.
func (ctrl *CertificateController) saveUpload(c *fiber.Ctx, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil || file.Filename == "" {
		return "", nil
	}

	path, err := util.SaveUpload(ctrl.uploadDir, file)
	if err != nil {
		slog.Error("Failed to save upload", "field", field, "file", file.Filename, "error", err)
		return "", apperror.Internal("failed to save "+field, err)
	}
	return path, nil
}
