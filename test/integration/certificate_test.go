//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	certificatemodel "github.com/sunthewhat/quick-cert-api/api/model/certificateModel"
	"github.com/sunthewhat/quick-cert-api/test/helpers"
	"github.com/sunthewhat/quick-cert-api/type/shared/model"
)

func sampleCertificate(id string) *model.Certificate {
	return &model.Certificate{
		ID:            id,
		Name:          "Jane Doe",
		Course:        "Intro to Systems",
		Date:          "2024-01-01",
		CertType:      "Achievement",
		PositionType:  "Rank",
		PositionValue: "1st",
		PdfPath:       "uploads/" + id + ".pdf",
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}
}

// TestCertificate_MongoRepository stores and verifies through the document store
func TestCertificate_MongoRepository(t *testing.T) {
	db := helpers.SetupTestMongo(t, "CertificatesDB")
	repo := certificatemodel.NewCertificateRepository(db, "certificates")
	ctx := context.Background()

	require.NoError(t, repo.EnsureIndexes(ctx))

	cert := sampleCertificate("CERT-1A2B3C4D")
	require.NoError(t, repo.Create(ctx, cert))

	found, err := repo.GetById(ctx, "CERT-1A2B3C4D")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Doe", found.Name)
	assert.Equal(t, "Achievement", found.CertType)
	assert.Equal(t, "1st", found.PositionValue)

	missing, err := repo.GetById(ctx, "CERT-00000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Keys stay compatible with records written by earlier deployments.
	var raw bson.M
	require.NoError(t, db.Collection("certificates").FindOne(ctx, bson.M{"id": "CERT-1A2B3C4D"}).Decode(&raw))
	for _, key := range []string{"id", "name", "course", "date", "certType", "positionType", "positionValue", "customTitle", "pdf_path"} {
		assert.Contains(t, raw, key)
	}
	assert.NotContains(t, raw, "archive_url")
}

// TestCertificate_MongoDuplicateIdentifiers documents that uniqueness is not enforced
func TestCertificate_MongoDuplicateIdentifiers(t *testing.T) {
	db := helpers.SetupTestMongo(t, "CertificatesDB")
	repo := certificatemodel.NewCertificateRepository(db, "certificates")
	ctx := context.Background()

	require.NoError(t, repo.EnsureIndexes(ctx))
	require.NoError(t, repo.Create(ctx, sampleCertificate("CERT-DEADBEEF")))
	require.NoError(t, repo.Create(ctx, sampleCertificate("CERT-DEADBEEF")))

	count, err := db.Collection("certificates").CountDocuments(ctx, bson.M{"id": "CERT-DEADBEEF"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// TestCertificate_SQLRepository stores and verifies through Postgres
func TestCertificate_SQLRepository(t *testing.T) {
	container := helpers.SetupTestDatabase(t)
	db := helpers.GetTestDB(t, container)
	repo := certificatemodel.NewCertificateSQLRepository(db)
	ctx := context.Background()

	cert := sampleCertificate("CERT-0F0F0F0F")
	cert.ArchiveURL = "http://minio.local/certificates/CERT-0F0F0F0F.pdf"
	require.NoError(t, repo.Create(ctx, cert))

	helpers.AssertRecordExists(t, db, &model.Certificate{}, "id = ?", "CERT-0F0F0F0F")

	found, err := repo.GetById(ctx, "CERT-0F0F0F0F")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Intro to Systems", found.Course)
	assert.Equal(t, cert.ArchiveURL, found.ArchiveURL)

	missing, err := repo.GetById(ctx, "CERT-00000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
