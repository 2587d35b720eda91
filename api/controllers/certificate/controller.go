package certificate_controller

import (
	"context"

	certificatemodel "github.com/sunthewhat/quick-cert-api/api/model/certificateModel"
	"github.com/sunthewhat/quick-cert-api/internal/renderer"
)

type IRenderer interface {
	Render(ctx context.Context, f renderer.Fields) (*renderer.Result, error)
}

// IArchive copies a generated PDF to object storage and returns its URL.
type IArchive interface {
	UploadPDF(ctx context.Context, objectName string, path string) (string, error)
}

type IMailer interface {
	SendCertificate(recipient string, certId string, pdfPath string) error
}

// CertificateController handles certificate generation and verification
type CertificateController struct {
	certRepo  certificatemodel.ICertificateRepository
	renderer  IRenderer
	uploadDir string
	archive   IArchive
	mailer    IMailer
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(certRepo certificatemodel.ICertificateRepository, renderer IRenderer, uploadDir string) *CertificateController {
	return &CertificateController{
		certRepo:  certRepo,
		renderer:  renderer,
		uploadDir: uploadDir,
	}
}

// WithArchive enables copying every generated PDF to object storage.
func (ctrl *CertificateController) WithArchive(archive IArchive) *CertificateController {
	ctrl.archive = archive
	return ctrl
}

// WithMailer enables e-mail delivery when the form carries an address.
func (ctrl *CertificateController) WithMailer(mailer IMailer) *CertificateController {
	ctrl.mailer = mailer
	return ctrl
}
