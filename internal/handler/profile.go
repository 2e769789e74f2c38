package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orvane/Gemstore_Go/internal/domain"
	"github.com/orvane/Gemstore_Go/internal/logger"
	"github.com/orvane/Gemstore_Go/internal/profile"
)

// CreateProfileRequest creates a character profile in an account's scope.
type CreateProfileRequest struct {
	AccountID string            `json:"account_id" validate:"required,max=128"`
	Scope     string            `json:"scope" validate:"omitempty,max=128"`
	Name      string            `json:"name" validate:"required,max=64"`
	Metadata  map[string]string `json:"metadata" validate:"omitempty,max=32"`
}

// HandleCreateProfile creates a character profile.
//
//	@Summary		Create profile
//	@Description	Creates a named character profile in the account's (scope) partition. The first profile in a partition becomes active.
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProfileRequest	true	"Profile to create"
//	@Success		201		{object}	domain.CharacterProfile
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Name already used in scope"
//	@Router			/profiles [post]
func HandleCreateProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
			return
		}

		created, err := profileService.CreateProfile(r.Context(), req.AccountID, req.Scope, req.Name, req.Metadata)
		if err != nil {
			respondServiceError(w, r, "Create profile", err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile created",
			"account_id", req.AccountID,
			"profile_id", created.ID,
			"scope", req.Scope)
		respondJSON(w, http.StatusCreated, created)
	}
}

// ProfileListResponse wraps an account's profiles.
type ProfileListResponse struct {
	AccountID string                    `json:"account_id"`
	Profiles  []domain.CharacterProfile `json:"profiles"`
}

// HandleListProfiles returns all of an account's profiles across scopes.
//
//	@Summary		List profiles
//	@Tags			profile
//	@Produce		json
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	ProfileListResponse
//	@Router			/profiles [get]
func HandleListProfiles(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		profiles, err := profileService.ListProfiles(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "List profiles", err)
			return
		}

		respondJSON(w, http.StatusOK, ProfileListResponse{
			AccountID: accountID,
			Profiles:  profiles,
		})
	}
}

// HandleGetProfile returns one profile owned by the account.
//
//	@Summary		Get profile
//	@Tags			profile
//	@Produce		json
//	@Param			profileID	path		string	true	"Profile ID"
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	domain.CharacterProfile
//	@Failure		404			{object}	ErrorResponse
//	@Router			/profiles/{profileID} [get]
func HandleGetProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		p, err := profileService.GetProfile(r.Context(), accountID, profileID)
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetActiveProfile returns the active profile of a (account, scope) partition.
//
//	@Summary		Get active profile
//	@Description	Returns the single active profile of the account's scope partition. Scope empty means platform-wide.
//	@Tags			profile
//	@Produce		json
//	@Param			account_id	query		string	true	"Account ID"
//	@Param			scope		query		string	false	"Game scope (empty for platform-wide)"
//	@Success		200			{object}	domain.CharacterProfile
//	@Failure		404			{object}	ErrorResponse
//	@Router			/profiles/active [get]
func HandleGetActiveProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}
		scope := r.URL.Query().Get("scope")

		p, err := profileService.GetActive(r.Context(), accountID, scope)
		if err != nil {
			respondServiceError(w, r, "Get active profile", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// ActivateProfileRequest switches the active profile of a partition.
type ActivateProfileRequest struct {
	AccountID string `json:"account_id" validate:"required,max=128"`
}

// HandleActivateProfile makes the profile active in its partition.
//
//	@Summary		Activate profile
//	@Description	Makes the profile the single active one in its (account, scope) partition, deactivating the previous holder atomically.
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			profileID	path		string					true	"Profile ID"
//	@Param			request		body		ActivateProfileRequest	true	"Owning account"
//	@Success		200			{object}	domain.CharacterProfile
//	@Failure		404			{object}	ErrorResponse
//	@Router			/profiles/{profileID}/activate [post]
func HandleActivateProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")

		var req ActivateProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Activate profile"); err != nil {
			return
		}

		p, err := profileService.Activate(r.Context(), req.AccountID, profileID)
		if err != nil {
			respondServiceError(w, r, "Activate profile", err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile activated",
			"account_id", req.AccountID,
			"profile_id", profileID,
			"scope", p.Scope)
		respondJSON(w, http.StatusOK, p)
	}
}

// HandleDeleteProfile removes a profile and its equipped items.
//
//	@Summary		Delete profile
//	@Tags			profile
//	@Produce		json
//	@Param			profileID	path		string	true	"Profile ID"
//	@Param			account_id	query		string	true	"Account ID"
//	@Success		200			{object}	SuccessResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/profiles/{profileID} [delete]
func HandleDeleteProfile(profileService profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID := chi.URLParam(r, "profileID")
		accountID, ok := GetQueryParam(r, w, "account_id")
		if !ok {
			return
		}

		if err := profileService.DeleteProfile(r.Context(), accountID, profileID); err != nil {
			respondServiceError(w, r, "Delete profile", err)
			return
		}

		logger.FromContext(r.Context()).Info("Profile deleted",
			"account_id", accountID,
			"profile_id", profileID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeleted})
	}
}
