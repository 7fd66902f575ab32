package handlers

import (
	"net/http"

	"skills-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams, members and team skills
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get a team with its members and skills
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	team, err := h.teamService.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /teams
// @Summary Create a team
// @Description Requires ADMIN or TEAMS_LIST_ADMIN
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Requires ADMIN or TEAMS_LIST_ADMIN. Members and team skills are removed with it.
// @Tags teams
// @Param id path int true "Team ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.teamService.DeleteTeam(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMembers handles GET /teams/:id/members
// @Summary List team members
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.TeamMemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	members, err := h.teamService.GetMembers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /teams/:id/members
// @Summary Add a member by username
// @Description Requires ADMIN, TEAMS_LIST_ADMIN or admin rights in the team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param member body service.AddTeamMemberRequest true "Member"
// @Success 201 {object} service.TeamMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.AddTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.teamService.AddMember(c.Request.Context(), userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a member
// @Description Requires ADMIN, TEAMS_LIST_ADMIN or admin rights in the team
// @Tags teams
// @Param id path int true "Team ID"
// @Param userId path int true "User ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, teamID, memberID, ok := h.memberPath(c)
	if !ok {
		return
	}
	if err := h.teamService.RemoveMember(c.Request.Context(), userID, teamID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetAdminRights handles PATCH /teams/:id/members/:userId/admin
// @Summary Grant or revoke team admin rights
// @Description Requires ADMIN, TEAMS_LIST_ADMIN or admin rights in the team
// @Tags teams
// @Accept json
// @Param id path int true "Team ID"
// @Param userId path int true "User ID"
// @Param rights body service.SetAdminRightsRequest true "Admin flag"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/members/{userId}/admin [patch]
func (h *TeamHandler) SetAdminRights(c *gin.Context) {
	userID, teamID, memberID, ok := h.memberPath(c)
	if !ok {
		return
	}
	var req service.SetAdminRightsRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.teamService.SetAdminRights(c.Request.Context(), userID, teamID, memberID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTeamSkills handles GET /teams/:id/skills
// @Summary List team skills with upvotes
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.TeamSkillResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/skills [get]
func (h *TeamHandler) GetTeamSkills(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	skills, err := h.teamService.GetTeamSkills(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// AddTeamSkill handles POST /teams/:id/skills
// @Summary Assign a skill to a team by name
// @Description Requires ADMIN, TEAMS_LIST_ADMIN or admin rights in the team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param skill body service.AddTeamSkillRequest true "Skill name"
// @Success 201 {object} service.TeamSkillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/skills [post]
func (h *TeamHandler) AddTeamSkill(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.AddTeamSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	teamSkill, err := h.teamService.AddTeamSkill(c.Request.Context(), userID, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, teamSkill)
}

// RemoveTeamSkill handles DELETE /teams/:id/skills/:skillId
// @Summary Unassign a skill from a team
// @Description Requires ADMIN, TEAMS_LIST_ADMIN or admin rights in the team
// @Tags teams
// @Param id path int true "Team ID"
// @Param skillId path int true "Skill ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /teams/{id}/skills/{skillId} [delete]
func (h *TeamHandler) RemoveTeamSkill(c *gin.Context) {
	userID, teamID, skillID, ok := h.teamSkillPath(c)
	if !ok {
		return
	}
	if err := h.teamService.RemoveTeamSkill(c.Request.Context(), userID, teamID, skillID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpvoteTeamSkill handles POST /teams/:id/skills/:skillId/upvote
// @Summary Upvote a team skill
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param skillId path int true "Skill ID"
// @Success 200 {object} service.TeamSkillResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already upvoted"
// @Security BearerAuth
// @Router /teams/{id}/skills/{skillId}/upvote [post]
func (h *TeamHandler) UpvoteTeamSkill(c *gin.Context) {
	userID, teamID, skillID, ok := h.teamSkillPath(c)
	if !ok {
		return
	}
	teamSkill, err := h.teamService.UpvoteTeamSkill(c.Request.Context(), userID, teamID, skillID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teamSkill)
}

// DownvoteTeamSkill handles DELETE /teams/:id/skills/:skillId/upvote
// @Summary Withdraw an upvote
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param skillId path int true "Skill ID"
// @Success 200 {object} service.TeamSkillResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Team skill or upvote not found"
// @Security BearerAuth
// @Router /teams/{id}/skills/{skillId}/upvote [delete]
func (h *TeamHandler) DownvoteTeamSkill(c *gin.Context) {
	userID, teamID, skillID, ok := h.teamSkillPath(c)
	if !ok {
		return
	}
	teamSkill, err := h.teamService.DownvoteTeamSkill(c.Request.Context(), userID, teamID, skillID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teamSkill)
}

func (h *TeamHandler) memberPath(c *gin.Context) (userID, teamID, memberID int64, ok bool) {
	if userID, ok = actingUser(c); !ok {
		return
	}
	if teamID, ok = pathID(c, "id"); !ok {
		return
	}
	memberID, ok = pathID(c, "userId")
	return
}

func (h *TeamHandler) teamSkillPath(c *gin.Context) (userID, teamID, skillID int64, ok bool) {
	if userID, ok = actingUser(c); !ok {
		return
	}
	if teamID, ok = pathID(c, "id"); !ok {
		return
	}
	skillID, ok = pathID(c, "skillId")
	return
}
