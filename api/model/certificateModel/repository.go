package certificatemodel

import (
	"context"

	"github.com/sunthewhat/quick-cert-api/type/shared/model"
)

// ICertificateRepository is the metadata store behind generation and verification.
// Records are inserted once and never updated or deleted.
type ICertificateRepository interface {
	Create(ctx context.Context, cert *model.Certificate) error
	// GetById returns nil, nil when no record carries the identifier.
	GetById(ctx context.Context, certId string) (*model.Certificate, error)
}

var (
	_ ICertificateRepository = (*CertificateRepository)(nil)
	_ ICertificateRepository = (*CertificateSQLRepository)(nil)
)
