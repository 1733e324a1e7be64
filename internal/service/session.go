package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"project-admin/internal/cache"
	"project-admin/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	SessionCookieName = "session"
	revokedKeyPrefix  = "session:revoked:"
	revokedUserPrefix = "session:revoked-user:"
)

var (
	timeNow         = time.Now
	newTokenID      = uuid.NewString
	parseWithClaims = jwt.ParseWithClaims
)

// Identity 是一個請求解析後的身分；零值代表 Anonymous
type Identity struct {
	UserID    int
	Role      model.Role
	SessionID string
	ExpiresAt time.Time
}

var Anonymous = Identity{}

func (i Identity) Authenticated() bool {
	return i.UserID > 0 && i.Role.Valid()
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated() && i.Role == model.RoleAdmin
}

// SessionClaims 定義 JWT 負載內容
type SessionClaims struct {
	UserID int        `json:"uid"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// Session 是登入成功後發給 client 的憑證
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

// Gate 簽發與驗證 session token。revocations 為 nil 時不支援登出撤銷。
type Gate struct {
	secret      []byte
	ttl         time.Duration
	revocations cache.Cache
}

func NewGate(secret string, ttl time.Duration, revocations cache.Cache) (*Gate, error) {
	if secret == "" {
		return nil, errors.New("session secret not set")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid session ttl: %s", ttl)
	}
	return &Gate{secret: []byte(secret), ttl: ttl, revocations: revocations}, nil
}

func (g *Gate) TTL() time.Duration { return g.ttl }

// Issue 依據使用者 id 與 role 產生簽章 token
func (g *Gate) Issue(user model.User) (Session, error) {
	if user.ID <= 0 || !user.Role.Valid() {
		return Session{}, fmt.Errorf("cannot issue session for user %d with role %q", user.ID, user.Role)
	}

	now := timeNow()
	expiresAt := now.Add(g.ttl)
	claims := SessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        newTokenID(),
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign session: %w", err)
	}
	return Session{
		Token: token,
		Identity: Identity{
			UserID:    user.ID,
			Role:      user.Role,
			SessionID: claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify 驗證簽章、演算法與到期時間，不檢查撤銷清單
func (g *Gate) Verify(tokenString string) (Identity, error) {
	token, err := parseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil {
		return Anonymous, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return Anonymous, errors.New("invalid token")
	}
	if claims.UserID <= 0 || !claims.Role.Valid() || claims.ID == "" {
		return Anonymous, errors.New("token is missing identity claims")
	}

	return Identity{
		UserID:    claims.UserID,
		Role:      claims.Role,
		SessionID: claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Resolve 從請求取出 token 並解析身分；沒有 token、驗證失敗或已撤銷都回傳 Anonymous
func (g *Gate) Resolve(ctx context.Context, r *http.Request) Identity {
	raw := TokenFromRequest(r)
	if raw == "" {
		return Anonymous
	}

	id, err := g.Verify(raw)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("session rejected")
		return Anonymous
	}

	revoked, err := g.isRevoked(ctx, id)
	if err != nil {
		// 撤銷清單讀不到時一律拒絕
		zerolog.Ctx(ctx).Warn().Err(err).Str("session_id", id.SessionID).Msg("revocation lookup failed")
		return Anonymous
	}
	if revoked {
		return Anonymous
	}
	return id
}

// Revoke 把 session 放進撤銷清單直到原本的到期時間
func (g *Gate) Revoke(ctx context.Context, id Identity) error {
	if g.revocations == nil || id.SessionID == "" {
		return nil
	}
	ttl := id.ExpiresAt.Sub(timeNow())
	if ttl <= 0 {
		return nil
	}
	if err := g.revocations.Set(ctx, revokedKeyPrefix+id.SessionID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// RevokeUser 讓該使用者目前所有的 session 失效。
// 任何在此之前簽發的 token 最晚在 ttl 後到期，因此標記只需保留 ttl。
func (g *Gate) RevokeUser(ctx context.Context, userID int) error {
	if g.revocations == nil || userID <= 0 {
		return nil
	}
	if err := g.revocations.Set(ctx, userRevocationKey(userID), "1", g.ttl).Err(); err != nil {
		return fmt.Errorf("revoke user sessions: %w", err)
	}
	return nil
}

func userRevocationKey(userID int) string {
	return revokedUserPrefix + strconv.Itoa(userID)
}

func (g *Gate) isRevoked(ctx context.Context, id Identity) (bool, error) {
	if g.revocations == nil {
		return false, nil
	}
	for _, key := range []string{revokedKeyPrefix + id.SessionID, userRevocationKey(id.UserID)} {
		revoked, err := g.keyExists(ctx, key)
		if err != nil || revoked {
			return revoked, err
		}
	}
	return false, nil
}

func (g *Gate) keyExists(ctx context.Context, key string) (bool, error) {
	err := g.revocations.Get(ctx, key).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}

// TokenFromRequest 先讀 Authorization: Bearer，再讀 session cookie
func TokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// SessionCookie 產生帶有 token 的 HttpOnly cookie
func SessionCookie(s Session, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredSessionCookie 用來在登出時清除 cookie
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
