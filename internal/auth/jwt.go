package auth

import (
	"fmt"
	"time"

	"sjavs-go/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims covers both account tokens and table session tokens. Seat is zero
// for plain account tokens; account fields are zero for guest seats.
type Claims struct {
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Seat     int    `json:"seat,omitempty"`
	Table    string `json:"table,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(userID int64, username string, cfg config.Config) (string, error) {
	return sign(Claims{UserID: userID, Username: username}, fmt.Sprintf("%d", userID), cfg)
}

// GenerateSeatToken issues a session token binding a display name to a seat
// at a table. The engine itself stays token-agnostic.
func GenerateSeatToken(table string, seat int, name string, userID int64, cfg config.Config) (string, error) {
	return sign(Claims{UserID: userID, Username: name, Seat: seat, Table: table}, fmt.Sprintf("seat:%d", seat), cfg)
}

func sign(claims Claims, subject string, cfg config.Config) (string, error) {
	if cfg.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET is required")
	}
	now := time.Now().UTC()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    cfg.JWTIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(cfg.JWTSecret))
}

func ParseAndValidateToken(tokenString string, cfg config.Config) (*Claims, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
