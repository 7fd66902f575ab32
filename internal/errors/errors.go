package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this skill"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// SkillSelfPrerequisiteError is returned when a skill is linked to itself
type SkillSelfPrerequisiteError struct {
	SkillID int64
}

func (e *SkillSelfPrerequisiteError) Error() string {
	return fmt.Sprintf("skill %d cannot be a prerequisite of itself", e.SkillID)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrSkillNotFound           = &NotFoundError{Entity: "skill"}
	ErrTeamNotFound            = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound      = &NotFoundError{Entity: "team member"}
	ErrTeamSkillNotFound       = &NotFoundError{Entity: "team skill"}
	ErrTeamSkillUpvoteNotFound = &NotFoundError{Entity: "team skill upvote"}
)

// Already Exists Errors
var (
	ErrUserExists              = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrSkillExists             = &AlreadyExistsError{Entity: "skill", Context: "with this name"}
	ErrTeamExists              = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrTeamMemberExists        = &AlreadyExistsError{Entity: "team member", Context: "in this team"}
	ErrTeamSkillExists         = &AlreadyExistsError{Entity: "team skill", Context: "for this team"}
	ErrTeamSkillUpvoteExists   = &AlreadyExistsError{Entity: "team skill upvote", Context: "from this user"}
	ErrSkillPrerequisiteExists = &AlreadyExistsError{Entity: "skill prerequisite", Context: "for this skill"}
	ErrSkillContributionExists = &AlreadyExistsError{Entity: "skill contribution", Context: "for this skill"}
	ErrGlobalPermissionExists  = &AlreadyExistsError{Entity: "global permission", Context: "for this user"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrMissingUserContext = &AuthenticationError{Message: "user not found in context"}
)

// Configuration Errors
var (
	ErrDefaultJWTSecret  = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrDatabaseNameUnset = &ConfigurationError{Message: "database name is required"}
)

// Helper Functions

// kind reports whether any error in err's chain has type T
func kind[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool { return kind[*NotFoundError](err) }

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool { return kind[*AlreadyExistsError](err) }

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool { return kind[*ValidationError](err) }

// IsSkillSelfPrerequisite checks if an error is a SkillSelfPrerequisiteError
func IsSkillSelfPrerequisite(err error) bool { return kind[*SkillSelfPrerequisiteError](err) }

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool { return kind[*AuthenticationError](err) }

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool { return kind[*AuthorizationError](err) }

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool { return kind[*ConfigurationError](err) }

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSkillSelfPrerequisiteError creates a new SkillSelfPrerequisiteError
func NewSkillSelfPrerequisiteError(skillID int64) error {
	return &SkillSelfPrerequisiteError{SkillID: skillID}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
