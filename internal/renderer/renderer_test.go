package renderer

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"image"
	"image/color"
	"image/png"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/quick-cert-api/type/apperror"
)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 250, G: 245, B: 230, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

// templateDir creates every template file in a fresh directory.
func templateDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, c := range Categories() {
		writePNG(t, filepath.Join(dir, c.Template()), 21, 30)
	}
	return dir
}

func readPDF(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output must be a PDF")
	return data
}

func TestRender_AllCategories(t *testing.T) {
	templates := templateDir(t)
	output := t.TempDir()
	r := New(Options{TemplateDir: templates, OutputDir: output})

	testCases := []struct {
		label string
		want  Category
	}{
		{"Course Completion", CourseCompletion},
		{"Participation", Participation},
		{"Achievement", Achievement},
		{"Custom", Custom},
		{"Workshop", Generic},
		{"", Generic},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			res, err := r.Render(context.Background(), Fields{
				Category:      tc.label,
				Name:          "Jane Doe",
				Course:        "Intro to Systems",
				Date:          "2024-01-01",
				CustomTitle:   "Certificate of Excellence",
				PositionType:  "Rank",
				PositionValue: "1st",
			})
			require.NoError(t, err)

			assert.True(t, IsCertificateID(res.ID), "identifier %q", res.ID)
			assert.Equal(t, tc.want, res.Category)
			assert.Equal(t, filepath.Join(output, res.ID+".pdf"), res.Path)

			data := readPDF(t, res.Path)
			assert.Len(t, pageObject.FindAll(data, -1), 1, "certificate is a single page")
		})
	}
}

func TestRender_GenericFallsBackToCustomTemplate(t *testing.T) {
	templates := t.TempDir()
	writePNG(t, filepath.Join(templates, "custom.png"), 21, 30)

	r := New(Options{TemplateDir: templates, OutputDir: t.TempDir()})
	res, err := r.Render(context.Background(), Fields{Category: "Hackathon", Name: "Jane Doe"})
	require.NoError(t, err)
	assert.Equal(t, Generic, res.Category)
	readPDF(t, res.Path)
}

func TestRender_MissingTemplate(t *testing.T) {
	templates := templateDir(t)
	require.NoError(t, os.Remove(filepath.Join(templates, "achievement.png")))
	output := t.TempDir()

	r := New(Options{TemplateDir: templates, OutputDir: output})
	res, err := r.Render(context.Background(), Fields{Category: "Achievement", Name: "Jane Doe"})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "achievement.png")

	entries, readErr := os.ReadDir(output)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "nothing is written when the template is missing")
}

func TestRender_LogoAndSignature(t *testing.T) {
	templates := templateDir(t)
	uploads := t.TempDir()
	logo := filepath.Join(uploads, "0123456789abcdef0123456789abcdef_logo")
	signature := filepath.Join(uploads, "fedcba9876543210fedcba9876543210_sig.png")
	writePNG(t, logo, 40, 20)
	writePNG(t, signature, 80, 20)

	r := New(Options{TemplateDir: templates, OutputDir: uploads})
	res, err := r.Render(context.Background(), Fields{
		Category:      "Participation",
		Name:          "Zoë Ångström",
		LogoPath:      logo,
		SignaturePath: signature,
	})
	require.NoError(t, err)
	readPDF(t, res.Path)
}

func TestRender_MissingOptionalImagesAreSkipped(t *testing.T) {
	r := New(Options{TemplateDir: templateDir(t), OutputDir: t.TempDir()})
	res, err := r.Render(context.Background(), Fields{
		Category:      "Course Completion",
		LogoPath:      filepath.Join(t.TempDir(), "gone.png"),
		SignaturePath: filepath.Join(t.TempDir(), "gone.png"),
	})
	require.NoError(t, err)
	readPDF(t, res.Path)
}

func TestRender_VerifyQRCode(t *testing.T) {
	r := New(Options{
		TemplateDir: templateDir(t),
		OutputDir:   t.TempDir(),
		VerifyURL:   "https://certs.example.com/newverify.html",
	})
	res, err := r.Render(context.Background(), Fields{Category: "Custom", Name: "Jane Doe"})
	require.NoError(t, err)
	readPDF(t, res.Path)
}

func TestRender_UsesGeneratedIdentifier(t *testing.T) {
	r := New(Options{TemplateDir: templateDir(t), OutputDir: t.TempDir()})
	r.newID = func() string { return "CERT-DEADBEEF" }

	res, err := r.Render(context.Background(), Fields{Category: "Participation"})
	require.NoError(t, err)
	assert.Equal(t, "CERT-DEADBEEF", res.ID)
	assert.Equal(t, "CERT-DEADBEEF.pdf", filepath.Base(res.Path))
}

func TestNewCertificateID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewCertificateID()
		assert.Regexp(t, `^CERT-[0-9A-F]{8}$`, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90)

	assert.False(t, IsCertificateID("CERT-deadbeef"))
	assert.False(t, IsCertificateID("CERT-123"))
}

func writeSigningPair(t *testing.T, dir string) (string, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "Certificate Issuer Test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}), 0600))
	return certPath, keyPath
}

func TestCertificateSigner(t *testing.T) {
	_, err := NewCertificateSigner("", "")
	assert.Error(t, err)

	_, err = NewCertificateSigner(filepath.Join(t.TempDir(), "missing.pem"), filepath.Join(t.TempDir(), "missing.key"))
	assert.Error(t, err)

	disabled := DisabledSigner()
	assert.False(t, disabled.IsEnabled())
	out, err := disabled.SignPDF([]byte("%PDF-1.3"), "CERT-00000000")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), out)

	certPath, keyPath := writeSigningPair(t, t.TempDir())
	signer, err := NewCertificateSigner(certPath, keyPath)
	require.NoError(t, err)
	assert.True(t, signer.IsEnabled())

	_, err = signer.SignPDF(nil, "CERT-00000000")
	assert.Error(t, err)

	// Signing failures fall back to the unsigned document, so rendering succeeds either way.
	r := New(Options{TemplateDir: templateDir(t), OutputDir: t.TempDir(), Signer: signer})
	res, err := r.Render(context.Background(), Fields{Category: "Participation", Name: "Jane Doe"})
	require.NoError(t, err)
	readPDF(t, res.Path)
}
