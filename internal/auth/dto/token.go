package dto

// TokenPair carries a freshly issued access/refresh token pair. The refresh
// token travels only in a cookie, never in a JSON body.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}
