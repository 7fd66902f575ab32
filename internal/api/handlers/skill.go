package handlers

import (
	"context"
	"net/http"

	"skills-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SkillHandler handles HTTP requests for skills and their prerequisite graph
type SkillHandler struct {
	skillService service.SkillServiceInterface
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService service.SkillServiceInterface) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills handles GET /skills
// @Summary List all skills
// @Tags skills
// @Produce json
// @Success 200 {array} service.SkillResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.ListSkills(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// GetSkill handles GET /skills/:id
// @Summary Get a skill with its prerequisites and contributions
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} service.SkillDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id} [get]
func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	skill, err := h.skillService.GetSkill(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// CreateSkill handles POST /skills
// @Summary Create a skill
// @Description Requires ADMIN or SKILLS_LIST_ADMIN
// @Tags skills
// @Accept json
// @Produce json
// @Param skill body service.CreateSkillRequest true "Skill data"
// @Success 201 {object} service.SkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills [post]
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req service.CreateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := h.skillService.CreateSkill(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// DeleteSkill handles DELETE /skills/:id
// @Summary Delete a skill
// @Description Requires ADMIN or SKILLS_LIST_ADMIN. Edges and team skills are removed with it.
// @Tags skills
// @Param id path int true "Skill ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id} [delete]
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.skillService.DeleteSkill(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPrerequisites handles GET /skills/:id/prerequisites
// @Summary List the skills a skill depends on
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {array} service.SkillResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id}/prerequisites [get]
func (h *SkillHandler) GetPrerequisites(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	skills, err := h.skillService.GetPrerequisites(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// AddPrerequisite handles POST /skills/:id/prerequisites
// @Summary Add a prerequisite by name
// @Tags skills
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param prerequisite body service.SkillLinkRequest true "Prerequisite skill name"
// @Success 201 {object} service.SkillResponse
// @Failure 400 {object} ErrorResponse "Invalid body or self prerequisite"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id}/prerequisites [post]
func (h *SkillHandler) AddPrerequisite(c *gin.Context) {
	h.link(c, h.skillService.AddPrerequisite)
}

// RemovePrerequisite handles DELETE /skills/:id/prerequisites/:prerequisiteId
// @Summary Remove a prerequisite edge
// @Tags skills
// @Param id path int true "Skill ID"
// @Param prerequisiteId path int true "Prerequisite skill ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id}/prerequisites/{prerequisiteId} [delete]
func (h *SkillHandler) RemovePrerequisite(c *gin.Context) {
	h.unlink(c, "prerequisiteId", h.skillService.RemovePrerequisite)
}

// GetContributions handles GET /skills/:id/contributions
// @Summary List the skills that depend on a skill
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {array} service.SkillResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id}/contributions [get]
func (h *SkillHandler) GetContributions(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	skills, err := h.skillService.GetContributions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// AddContribution handles POST /skills/:id/contributions
// @Summary Add a dependent skill by name
// @Tags skills
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param contribution body service.SkillLinkRequest true "Dependent skill name"
// @Success 201 {object} service.SkillResponse
// @Failure 400 {object} ErrorResponse "Invalid body or self prerequisite"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id}/contributions [post]
func (h *SkillHandler) AddContribution(c *gin.Context) {
	h.link(c, h.skillService.AddContribution)
}

// RemoveContribution handles DELETE /skills/:id/contributions/:contributionId
// @Summary Remove a contribution edge
// @Tags skills
// @Param id path int true "Skill ID"
// @Param contributionId path int true "Dependent skill ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /skills/{id}/contributions/{contributionId} [delete]
func (h *SkillHandler) RemoveContribution(c *gin.Context) {
	h.unlink(c, "contributionId", h.skillService.RemoveContribution)
}

type linkFunc func(ctx context.Context, actingUserID, skillID int64, req *service.SkillLinkRequest) (*service.SkillResponse, error)

type unlinkFunc func(ctx context.Context, actingUserID, skillID, otherID int64) error

func (h *SkillHandler) link(c *gin.Context, add linkFunc) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.SkillLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := add(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) unlink(c *gin.Context, param string, remove unlinkFunc) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, param)
	if !ok {
		return
	}
	if err := remove(c.Request.Context(), userID, id, otherID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
