package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

// CertificateSigner applies a certification signature to rendered PDFs.
type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

// DisabledSigner returns a signer that leaves PDFs untouched.
func DisabledSigner() *CertificateSigner {
	return &CertificateSigner{enabled: false}
}

// NewCertificateSigner loads a PEM certificate and RSA key (PKCS1 or PKCS8).
func NewCertificateSigner(certPath string, keyPath string) (*CertificateSigner, error) {
	if certPath == "" || keyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", certPath, err)
	}

	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", certPath)
	}

	certificate, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", keyPath, err)
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", keyPath)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(keyBlock.Bytes)
	if err != nil {
		key, err := x509.ParsePKCS8PrivateKey(keyBlock.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		var ok bool
		privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key is not RSA format")
		}
	}

	slog.Info("Certificate signer initialized successfully",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s != nil && s.enabled
}

// SignPDF returns the signed document. Errors leave the caller with the
// unsigned bytes; a panic inside the signing library is reported as an error.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, certificateID string) (signed []byte, err error) {
	if !s.IsEnabled() {
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("empty PDF bytes")
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic occurred during PDF signing", "panic", r, "cert_id", certificateID)
			signed, err = nil, fmt.Errorf("pdf signing panicked: %v", r)
		}
	}()

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Certificate Issuer",
				Location: "Certificate Service",
				Reason:   fmt.Sprintf("Issued certificate %s", certificateID),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	pdfReader, err := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF for signing: %w", err)
	}

	var outputBuffer bytes.Buffer
	if err := sign.Sign(bytes.NewReader(pdfBytes), &outputBuffer, pdfReader, int64(len(pdfBytes)), signData); err != nil {
		return nil, fmt.Errorf("failed to sign PDF: %w", err)
	}
	if outputBuffer.Len() == 0 {
		return nil, fmt.Errorf("signing produced empty output")
	}

	slog.Info("PDF signed successfully",
		"cert_id", certificateID,
		"original_size", len(pdfBytes),
		"signed_size", outputBuffer.Len())

	return outputBuffer.Bytes(), nil
}
