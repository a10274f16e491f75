package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "ft_access_token"
	COOKIE_REDIRECT_NAME     = "ft_redirect"
)
