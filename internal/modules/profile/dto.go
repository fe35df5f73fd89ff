package profile

import "hoodbook/internal/domain"

type ProfileResponse struct {
	Profile  *domain.UserProfile `json:"profile"`
	Missing  []string            `json:"missing"`
	Complete bool                `json:"complete"`
}

func toResponse(p domain.UserProfile, ok bool) ProfileResponse {
	if !ok {
		return ProfileResponse{Missing: Missing(domain.UserProfile{})}
	}
	missing := Missing(p)
	return ProfileResponse{Profile: &p, Missing: missing, Complete: len(missing) == 0}
}
