package renderer

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Category selects the background template and any category-specific line.
type Category int

const (
	// Generic is used for labels outside the closed set. It shares the custom
	// template but never draws the custom title.
	Generic Category = iota
	CourseCompletion
	Participation
	Achievement
	Custom
)

// drawRule draws the optional category-specific line. tr converts UTF-8 text
// to the core font code page.
type drawRule func(pdf *gofpdf.Fpdf, tr func(string) string, f Fields)

type variant struct {
	label    string
	template string
	extra    drawRule
}

var variants = map[Category]variant{
	Generic:          {label: "", template: "custom.png"},
	CourseCompletion: {label: "Course Completion", template: "course_completion.png"},
	Participation:    {label: "Participation", template: "participation.png"},
	Achievement:      {label: "Achievement", template: "achievement.png", extra: drawPosition},
	Custom:           {label: "Custom", template: "custom.png", extra: drawCustomTitle},
}

// Categories lists every variant in declaration order.
func Categories() []Category {
	return []Category{Generic, CourseCompletion, Participation, Achievement, Custom}
}

// ParseCategory maps a submitted label to its variant; unknown labels map to Generic.
func ParseCategory(label string) Category {
	for _, c := range Categories() {
		if c != Generic && variants[c].label == label {
			return c
		}
	}
	return Generic
}

func (c Category) String() string {
	if v, ok := variants[c]; ok && v.label != "" {
		return v.label
	}
	return "Generic"
}

// Template is the background file name inside the template directory.
func (c Category) Template() string {
	v, ok := variants[c]
	if !ok {
		panic(fmt.Sprintf("renderer: category %d has no variant", int(c)))
	}
	return v.template
}

func (c Category) rule() drawRule {
	return variants[c].extra
}

func drawCustomTitle(pdf *gofpdf.Fpdf, tr func(string) string, f Fields) {
	if f.CustomTitle == "" {
		return
	}
	pdf.SetXY(0, 100)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(pageWidth, lineHeight, tr(f.CustomTitle), "", 0, "C", false, 0, "")
}

func drawPosition(pdf *gofpdf.Fpdf, tr func(string) string, f Fields) {
	if f.PositionType == "" || f.PositionValue == "" {
		return
	}
	pdf.SetXY(0, 180)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(pageWidth, lineHeight, tr(f.PositionType+": "+f.PositionValue), "", 0, "C", false, 0, "")
}
