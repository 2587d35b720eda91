package certificatemodel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sunthewhat/quick-cert-api/type/apperror"
	"github.com/sunthewhat/quick-cert-api/type/shared/model"
	"gorm.io/gorm"
)

// CertificateSQLRepository stores certificate records in the Postgres certificates table.
type CertificateSQLRepository struct {
	db *gorm.DB
}

func NewCertificateSQLRepository(db *gorm.DB) *CertificateSQLRepository {
	return &CertificateSQLRepository{
		db: db,
	}
}

func (r *CertificateSQLRepository) Create(ctx context.Context, cert *model.Certificate) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if cert.CreatedAt.IsZero() {
		cert.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(cert).Error; err != nil {
		slog.Error("CertificateModel SQL Create failed", "error", err, "cert_id", cert.ID)
		return apperror.Unavailable("failed to store certificate", err)
	}

	slog.Info("CertificateModel SQL Create", "cert_id", cert.ID, "cert_type", cert.CertType)
	return nil
}

func (r *CertificateSQLRepository) GetById(ctx context.Context, certId string) (*model.Certificate, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cert model.Certificate
	err := r.db.WithContext(ctx).Where("id = ?", certId).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("CertificateModel SQL GetById failed", "error", err, "cert_id", certId)
		return nil, apperror.Unavailable("failed to look up certificate", err)
	}

	return &cert, nil
}
