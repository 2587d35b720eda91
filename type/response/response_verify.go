package response

import "github.com/sunthewhat/quick-cert-api/type/shared/model"

const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

type VerifiedCertificate struct {
	Name     string `json:"name"`
	Course   string `json:"course"`
	Date     string `json:"date"`
	CertType string `json:"certType"`
}

type VerifyResponse struct {
	Status      string               `json:"status"`
	Certificate *VerifiedCertificate `json:"certificate,omitempty"`
	Message     *string              `json:"message,omitempty"`
}

func Valid(cert *model.Certificate) *VerifyResponse {
	return &VerifyResponse{
		Status: StatusValid,
		Certificate: &VerifiedCertificate{
			Name:     cert.Name,
			Course:   cert.Course,
			Date:     cert.Date,
			CertType: cert.CertType,
		},
	}
}

func Invalid() *VerifyResponse {
	return &VerifyResponse{Status: StatusInvalid}
}
