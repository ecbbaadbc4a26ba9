package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"house-price/internal/features"
	"house-price/internal/form"
	"house-price/internal/service"
)

// PredictionHandler mantiene dependencias para los endpoints de estimación.
type PredictionHandler struct {
	logger *zap.Logger
	svc    *service.PredictionService
}

// NewPredictionHandler crea una instancia de PredictionHandler.
func NewPredictionHandler(logger *zap.Logger, svc *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		logger: logger,
		svc:    svc,
	}
}

// predictRequest arranca con los defaults del formulario: los campos ausentes los conservan.
type predictRequest struct {
	Beds               int     `json:"beds" binding:"min=0,max=12"`
	Baths              int     `json:"baths" binding:"min=0,max=8"`
	Parking            int     `json:"parking" binding:"min=0,max=8"`
	LandSize           float64 `json:"land_size" binding:"min=0,max=200000"`
	DistanceToCBD      float64 `json:"distance_to_cbd" binding:"min=0,max=500"`
	NearestSupermarket float64 `json:"nearest_supermarket" binding:"min=0,max=200"`
	NearestTrain       float64 `json:"nearest_train" binding:"min=0,max=200"`
	NearestBus         float64 `json:"nearest_bus" binding:"min=0,max=200"`
	NearestPark        float64 `json:"nearest_park" binding:"min=0,max=200"`
	PropertyType       string  `json:"property_type"`
	SaleMethod         string  `json:"sale_method"`
}

func newPredictRequest() predictRequest {
	d := form.Defaults()
	return predictRequest{
		Beds:               d.Beds,
		Baths:              d.Baths,
		Parking:            d.Parking,
		LandSize:           d.LandSize,
		DistanceToCBD:      d.DistanceToCBD,
		NearestSupermarket: d.NearestSupermarket,
		NearestTrain:       d.NearestTrain,
		NearestBus:         d.NearestBus,
		NearestPark:        d.NearestPark,
		PropertyType:       string(d.PropertyType),
		SaleMethod:         string(d.SaleMethod),
	}
}

func (r predictRequest) inputs() (features.Inputs, error) {
	pt, err := features.ParsePropertyType(r.PropertyType)
	if err != nil {
		return features.Inputs{}, err
	}
	sm, err := features.ParseSaleMethod(r.SaleMethod)
	if err != nil {
		return features.Inputs{}, err
	}
	return features.Inputs{
		Beds:               r.Beds,
		Baths:              r.Baths,
		Parking:            r.Parking,
		LandSize:           r.LandSize,
		DistanceToCBD:      r.DistanceToCBD,
		NearestSupermarket: r.NearestSupermarket,
		NearestTrain:       r.NearestTrain,
		NearestBus:         r.NearestBus,
		NearestPark:        r.NearestPark,
		PropertyType:       pt,
		SaleMethod:         sm,
	}, nil
}

func (h *PredictionHandler) bindInputs(c *gin.Context) (features.Inputs, bool) {
	req := newPredictRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid predict request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return features.Inputs{}, false
	}
	in, err := req.inputs()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return features.Inputs{}, false
	}
	return in, true
}

// Predict maneja POST /api/predict.
func (h *PredictionHandler) Predict(c *gin.Context) {
	in, ok := h.bindInputs(c)
	if !ok {
		return
	}

	estimate, err := h.svc.Predict(c.Request.Context(), in)
	if err != nil {
		c.JSON(predictFailureStatus(err), gin.H{"error": "prediction failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"estimate": estimate})
}

// Preview maneja POST /api/preview.
func (h *PredictionHandler) Preview(c *gin.Context) {
	in, ok := h.bindInputs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"derived": h.svc.Preview(in)})
}

// Schema maneja GET /api/schema.
func (h *PredictionHandler) Schema(c *gin.Context) {
	schema := h.svc.Schema()
	c.JSON(http.StatusOK, gin.H{
		"artifact":      h.svc.ArtifactName(),
		"feature_order": schema.Names(),
		"coverage":      features.Coverage(schema),
	})
}

// Health maneja GET /healthz.
func (h *PredictionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "artifact": h.svc.ArtifactName()})
}

// ShowForm maneja GET /.
func (h *PredictionHandler) ShowForm(c *gin.Context) {
	in := form.Defaults()
	c.HTML(http.StatusOK, formTemplate, newFormView(in, h.svc.Preview(in), h.svc.ArtifactName()))
}

// SubmitForm maneja POST /: predice y vuelve a mostrar el formulario con el resultado.
// Si la predicción falla se muestra el error y ningún precio.
func (h *PredictionHandler) SubmitForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderFormError(c, http.StatusBadRequest, form.Defaults(), alertInvalidInput, err.Error())
		return
	}
	in, err := form.FromValues(c.Request.PostForm)
	if err != nil {
		h.logger.Warn("invalid form submission", zap.Error(err))
		h.renderFormError(c, http.StatusBadRequest, form.Defaults(), alertInvalidInput, err.Error())
		return
	}

	estimate, err := h.svc.Predict(c.Request.Context(), in)
	if err != nil {
		h.renderFormError(c, predictFailureStatus(err), in, alertPredictionFailed, err.Error())
		return
	}

	view := newFormView(in, estimate.Derived, h.svc.ArtifactName())
	view.Estimate = &estimate
	c.HTML(http.StatusOK, formTemplate, view)
}

// FormRateLimited responde al formulario HTML cuando la IP agotó su cuota de predicciones.
func (h *PredictionHandler) FormRateLimited(c *gin.Context) {
	in := form.Defaults()
	if err := c.Request.ParseForm(); err == nil {
		if parsed, err := form.FromValues(c.Request.PostForm); err == nil {
			in = parsed
		}
	}
	h.renderFormError(c, http.StatusTooManyRequests, in, alertRateLimited, "too many predictions from this address, try again later")
}

func (h *PredictionHandler) renderFormError(c *gin.Context, status int, in features.Inputs, title, msg string) {
	view := newFormView(in, h.svc.Preview(in), h.svc.ArtifactName())
	view.Alert = &alertView{Title: title, Message: msg}
	c.HTML(status, formTemplate, view)
}

// predictFailureStatus: el pipeline es un colaborador externo, su falla es 502.
func predictFailureStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
