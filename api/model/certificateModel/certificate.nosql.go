package certificatemodel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sunthewhat/quick-cert-api/type/apperror"
	"github.com/sunthewhat/quick-cert-api/type/shared/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 10 * time.Second

// CertificateRepository stores certificate records as MongoDB documents.
type CertificateRepository struct {
	collection *mongo.Collection
}

func NewCertificateRepository(db *mongo.Database, collectionName string) *CertificateRepository {
	return &CertificateRepository{
		collection: db.Collection(collectionName),
	}
}

// EnsureIndexes creates the lookup index on the certificate identifier.
// The index is not unique; identifier uniqueness stays probabilistic.
func (r *CertificateRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
	})
	if err != nil {
		slog.Error("CertificateModel EnsureIndexes failed", "error", err)
		return apperror.Unavailable("create certificate index", err)
	}
	return nil
}

func (r *CertificateRepository) Create(ctx context.Context, cert *model.Certificate) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if cert.CreatedAt.IsZero() {
		cert.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, cert); err != nil {
		slog.Error("CertificateModel Create failed", "error", err, "cert_id", cert.ID)
		return apperror.Unavailable("failed to store certificate", err)
	}

	slog.Info("CertificateModel Create", "cert_id", cert.ID, "cert_type", cert.CertType)
	return nil
}

func (r *CertificateRepository) GetById(ctx context.Context, certId string) (*model.Certificate, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var cert model.Certificate
	err := r.collection.FindOne(ctx, bson.M{"id": certId}).Decode(&cert)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		slog.Error("CertificateModel GetById failed", "error", err, "cert_id", certId)
		return nil, apperror.Unavailable("failed to look up certificate", err)
	}

	return &cert, nil
}
