package certificatemodel

import (
	"context"

	"github.com/sunthewhat/quick-cert-api/type/shared/model"
)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	CreateFunc  func(ctx context.Context, cert *model.Certificate) error
	GetByIdFunc func(ctx context.Context, certId string) (*model.Certificate, error)
}

// Ensure MockCertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*MockCertificateRepository)(nil)

// NewMockCertificateRepository creates a new mock repository
func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) Create(ctx context.Context, cert *model.Certificate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, cert)
	}
	return nil
}

func (m *MockCertificateRepository) GetById(ctx context.Context, certId string) (*model.Certificate, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(ctx, certId)
	}
	return nil, nil
}

// NewMemoryCertificateRepository returns a mock backed by a map, so records
// created through it can be verified afterwards.
func NewMemoryCertificateRepository() *MockCertificateRepository {
	records := map[string]model.Certificate{}
	return &MockCertificateRepository{
		CreateFunc: func(ctx context.Context, cert *model.Certificate) error {
			records[cert.ID] = *cert
			return nil
		},
		GetByIdFunc: func(ctx context.Context, certId string) (*model.Certificate, error) {
			cert, ok := records[certId]
			if !ok {
				return nil, nil
			}
			return &cert, nil
		},
	}
}
