package http

import (
	"embed"
	"html/template"

	"house-price/internal/domain"
	"house-price/internal/features"
	"house-price/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

const formTemplate = "form.html"

const (
	alertInvalidInput     = "Invalid input"
	alertPredictionFailed = "Prediction failed"
	alertRateLimited      = "Too many requests"
)

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type fieldView struct {
	Name  string
	Label string
	Value string
	Min   string
	Max   string
	Step  string
}

type choiceView struct {
	Label    string
	Selected bool
}

type formView struct {
	Artifact      string
	Fields        []fieldView
	PropertyTypes []choiceView
	SaleMethods   []choiceView
	Preview       domain.Preview
	Estimate      *domain.Estimate
	Alert         *alertView
}

type alertView struct {
	Title   string
	Message string
}

func newFormView(in features.Inputs, preview domain.Preview, artifact string) formView {
	view := formView{Artifact: artifact, Preview: preview}
	for _, f := range form.Fields {
		view.Fields = append(view.Fields, fieldView{
			Name:  f.Name,
			Label: f.Label,
			Value: f.Format(f.Get(in)),
			Min:   f.Format(f.Min),
			Max:   f.Format(f.Max),
			Step:  f.Format(f.Step),
		})
	}
	for _, p := range features.PropertyTypes {
		view.PropertyTypes = append(view.PropertyTypes, choiceView{Label: string(p), Selected: p == in.PropertyType})
	}
	for _, m := range features.SaleMethods {
		view.SaleMethods = append(view.SaleMethods, choiceView{Label: string(m), Selected: m == in.SaleMethod})
	}
	return view
}
