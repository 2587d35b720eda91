package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/quick-cert-api/common/util"
	"github.com/sunthewhat/quick-cert-api/type/payload"
	"github.com/sunthewhat/quick-cert-api/type/response"
)

const msgCertificateIdMissing = "Certificate ID missing"

func (ctrl *CertificateController) Verify(c *fiber.Ctx) error {
	body := new(payload.VerifyCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		slog.Warn("Verify certificate failed to parse body", "error", err)
		return response.SendFailed(c, msgCertificateIdMissing)
	}

	if err := util.ValidateStruct(body); err != nil {
		return response.SendFailed(c, msgCertificateIdMissing)
	}

	cert, err := ctrl.certRepo.GetById(c.UserContext(), body.CertId)

	if err != nil {
		slog.Error("Error verifying certificate", "cert_id", body.CertId, "error", err)
		return response.SendAppError(c, err)
	}

	if cert == nil {
		slog.Info("Verification of unknown certificate", "cert_id", body.CertId)
		return response.SendVerify(c, response.Invalid())
	}

	slog.Info("Certificate verified", "cert_id", body.CertId, "name", cert.Name)
	return response.SendVerify(c, response.Valid(cert))
}
