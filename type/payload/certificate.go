package payload

// GenerateCertificatePayload is the text part of the generation form.
type GenerateCertificatePayload struct {
	CertType      string `form:"certType"`
	Name          string `form:"name"`
	Course        string `form:"course"`
	Date          string `form:"date"`
	CustomTitle   string `form:"customTitle"`
	PositionType  string `form:"positionType"`
	PositionValue string `form:"positionValue"`
	Email         string `form:"email" validate:"omitempty,email"`
}

type VerifyCertificatePayload struct {
	CertId string `json:"certId" validate:"required"`
}
