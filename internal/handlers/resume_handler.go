package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
	"github.com/riya0701/AI-Placement-Advisor/internal/services"
)

type ResumeHandler struct {
	storageService services.StorageService
	resumeParser   services.ResumeParserService
	fetcher        services.FetcherService
	vocabService   services.VocabularyService
	inference      services.InferenceService
	vocabulary     map[string]bool
	maxFileSize    int64
}

func NewResumeHandler(
	storageService services.StorageService,
	resumeParser services.ResumeParserService,
	fetcher services.FetcherService,
	vocabService services.VocabularyService,
	inference services.InferenceService,
	vocabulary map[string]bool,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		storageService: storageService,
		resumeParser:   resumeParser,
		fetcher:        fetcher,
		vocabService:   vocabService,
		inference:      inference,
		vocabulary:     vocabulary,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resume/upload: saves the multipart
// "resume" file, extracts its text and returns the auto-inferred
// profile fields for the client's form.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Send it as the 'resume' form field.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer h.storageService.DeleteFile(filename)

	text, err := h.resumeParser.ExtractText(filePath)
	if err != nil {
		// Extraction failures degrade to an empty resume; the user can
		// still fill the form manually.
		log.Printf("⚠️  Failed to extract resume text: %v\n", err)
		return c.JSON(h.buildProfileResponse("", fmt.Sprintf("could not read resume: %v", err)))
	}

	return c.JSON(h.buildProfileResponse(text, ""))
}

// HandleFetch handles POST /resume/fetch: downloads a resume from a
// remote link and returns the same pre-filled profile as an upload.
func (h *ResumeHandler) HandleFetch(c *fiber.Ctx) error {
	var req models.FetchResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.URL) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "url is required",
		})
	}

	data, filename, err := h.fetcher.FetchResume(c.Context(), req.URL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to fetch resume: %v", err),
		})
	}

	text, err := h.resumeParser.ExtractFromBytes(data, filename)
	if err != nil {
		log.Printf("⚠️  Failed to extract fetched resume text: %v\n", err)
		return c.JSON(h.buildProfileResponse("", fmt.Sprintf("could not read resume: %v", err)))
	}

	return c.JSON(h.buildProfileResponse(text, ""))
}

func (h *ResumeHandler) buildProfileResponse(text, warning string) models.ResumeProfileResponse {
	inferred := h.inference.InferProfile(text)

	response := models.ResumeProfileResponse{
		Name:           inferred.Name,
		Certifications: inferred.Certifications,
		Skills:         h.vocabService.ExtractSkills(text, h.vocabulary),
		TextLength:     len(text),
		Warning:        warning,
	}
	if inferred.GradeScore != nil {
		response.GradeScore = *inferred.GradeScore
	}

	return response
}
