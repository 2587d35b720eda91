package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/sunthewhat/quick-cert-api/type/apperror"
)

// A4 portrait, millimetres.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	lineHeight = 10.0
)

var certIDPattern = regexp.MustCompile(`^CERT-[0-9A-F]{8}$`)

// Fields is everything drawn onto one certificate.
type Fields struct {
	Category      string
	Name          string
	Course        string
	Date          string
	CustomTitle   string
	PositionType  string
	PositionValue string
	LogoPath      string
	SignaturePath string
}

type Result struct {
	ID       string
	Path     string
	Category Category
}

type Options struct {
	TemplateDir string
	OutputDir   string
	// VerifyURL enables a QR code pointing at the verification page.
	VerifyURL string
	Signer    *CertificateSigner
}

type Renderer struct {
	templateDir string
	outputDir   string
	verifyURL   string
	signer      *CertificateSigner
	newID       func() string
}

func New(opts Options) *Renderer {
	return &Renderer{
		templateDir: opts.TemplateDir,
		outputDir:   opts.OutputDir,
		verifyURL:   opts.VerifyURL,
		signer:      opts.Signer,
		newID:       NewCertificateID,
	}
}

// NewCertificateID returns "CERT-" followed by 8 random uppercase hex digits.
// Collisions are possible and not checked.
func NewCertificateID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "CERT-" + strings.ToUpper(hex[:8])
}

func IsCertificateID(id string) bool {
	return certIDPattern.MatchString(id)
}

// Render draws the certificate described by f and writes it to <output dir>/<id>.pdf.
func (r *Renderer) Render(ctx context.Context, f Fields) (*Result, error) {
	category := ParseCategory(f.Category)
	templatePath := filepath.Join(r.templateDir, category.Template())

	if _, err := os.Stat(templatePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.NotFound(fmt.Sprintf("Template %s not found!", templatePath))
		}
		return nil, apperror.Internal("failed to read template", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r.drawImage(pdf, templatePath, 0, 0, pageWidth, pageHeight)

	if exists(f.LogoPath) {
		r.drawImage(pdf, f.LogoPath, 10, 10, 30, 0)
	}
	if exists(f.SignaturePath) {
		r.drawImage(pdf, f.SignaturePath, 150, 250, 40, 0)
	}

	id := r.newID()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(0, 120)
	pdf.CellFormat(pageWidth, lineHeight, tr(orDefault(f.Name, "[Student Name]")), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 18)
	pdf.SetXY(0, 150)
	pdf.CellFormat(pageWidth, lineHeight, tr(orDefault(f.Course, "[Course/Event]")), "", 0, "C", false, 0, "")

	pdf.SetXY(0, 170)
	pdf.CellFormat(pageWidth, lineHeight, tr("Date: "+orDefault(f.Date, "[Date]")), "", 0, "C", false, 0, "")

	if rule := category.rule(); rule != nil {
		rule(pdf, tr, f)
	}

	if r.verifyURL != "" {
		if err := r.drawVerifyQR(pdf, id); err != nil {
			return nil, apperror.Internal("failed to draw verification QR code", err)
		}
	}

	pdf.SetXY(0, 280)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(pageWidth, lineHeight, "Certificate ID: "+id, "", 0, "C", false, 0, "")

	if pdf.Err() {
		return nil, apperror.Internal("failed to render certificate", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperror.Internal("failed to generate PDF", err)
	}

	if ctx.Err() != nil {
		return nil, apperror.Internal("certificate rendering cancelled", ctx.Err())
	}

	pdfBytes := buf.Bytes()
	if r.signer != nil && r.signer.IsEnabled() {
		if signed, err := r.signer.SignPDF(pdfBytes, id); err == nil {
			pdfBytes = signed
		} else {
			slog.Warn("Failed to sign PDF, keeping unsigned version", "error", err, "cert_id", id)
		}
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return nil, apperror.Internal("failed to create output directory", err)
	}

	outputPath := filepath.Join(r.outputDir, id+".pdf")
	if err := os.WriteFile(outputPath, pdfBytes, 0644); err != nil {
		return nil, apperror.Internal("failed to write certificate", err)
	}

	slog.Info("Certificate rendered", "cert_id", id, "category", category.String(), "path", outputPath)

	return &Result{ID: id, Path: outputPath, Category: category}, nil
}

// drawImage places an image file; h of 0 keeps the aspect ratio.
func (r *Renderer) drawImage(pdf *gofpdf.Fpdf, path string, x, y, w, h float64) {
	pdf.ImageOptions(path, x, y, w, h, false, gofpdf.ImageOptions{ImageType: imageType(path)}, 0, "")
}

func (r *Renderer) drawVerifyQR(pdf *gofpdf.Fpdf, id string) error {
	target, err := url.Parse(r.verifyURL)
	if err != nil {
		return err
	}
	query := target.Query()
	query.Set("certId", id)
	target.RawQuery = query.Encode()

	qrBytes, err := qrcode.Encode(target.String(), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	name := "verify-qr-" + id
	options := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(qrBytes))
	pdf.ImageOptions(name, 10, 250, 30, 30, false, options, 0, "")
	return nil
}

// imageType sniffs the image format so uploads without an extension still embed.
func imageType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	switch {
	case mtype.Is("image/png"):
		return "PNG"
	case mtype.Is("image/jpeg"):
		return "JPG"
	case mtype.Is("image/gif"):
		return "GIF"
	}
	return ""
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func orDefault(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
