package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/onboarding"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	ucOnboarding "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/onboarding"
)

type OnboardingHandler struct {
	prefill *ucOnboarding.Prefill
	submit  *ucOnboarding.Submit
}

func NewOnboardingHandler(
	prefill *ucOnboarding.Prefill,
	submit *ucOnboarding.Submit,
) *OnboardingHandler {
	return &OnboardingHandler{prefill: prefill, submit: submit}
}

func (h *OnboardingHandler) Prefill(c *gin.Context) {
	out, err := h.prefill.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ValidateStep lets the wizard check one step before moving on.
func (h *OnboardingHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		badRequest(c)
		return
	}

	var d onboarding.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c)
		return
	}
	d.Specialties = onboarding.NormalizeSpecialties(d.Specialties)

	if err := onboarding.ValidateStep(step, d); err != nil {
		fail(c, err)
		return
	}

	next := step + 1
	if next > onboarding.LastStep {
		next = onboarding.LastStep
	}
	httpresp.OK(c, gin.H{"valid": true, "next_step": next})
}

// Submit takes multipart: draft (JSON), avatar?, portfolio (repeated) and
// portfolio_caption (repeated, aligned with portfolio). Files past the
// portfolio cap are counted as dropped without being read.
func (h *OnboardingHandler) Submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		bindFailed(c, err)
		return
	}

	var d onboarding.Draft
	if err := json.Unmarshal([]byte(firstValue(form.Value["draft"])), &d); err != nil {
		badRequest(c)
		return
	}

	in := ucOnboarding.SubmitInput{Draft: d}

	if files := form.File["avatar"]; len(files) > 0 {
		avatar, err := readFile(files[0])
		if err != nil {
			fail(c, err)
			return
		}
		in.Avatar = &ucOnboarding.Image{Data: avatar}
	}

	files := form.File["portfolio"]
	if len(files) > onboarding.MaxPortfolio {
		in.Skipped = len(files) - onboarding.MaxPortfolio
		files = files[:onboarding.MaxPortfolio]
	}
	captions := form.Value["portfolio_caption"]
	for i, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			fail(c, err)
			return
		}
		img := ucOnboarding.Image{Data: data}
		if i < len(captions) && captions[i] != "" {
			caption := captions[i]
			img.Caption = &caption
		}
		in.Portfolio = append(in.Portfolio, img)
	}

	out, err := h.submit.Execute(c.Request.Context(), middleware.CurrentIdentity(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, out)
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
