package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const operatorKey = "operatorID"

// IssueOperatorToken signs an operator token carrying the id claim.
func IssueOperatorToken(secret string, operatorID int64) (string, error) {
	claims := jwt.MapClaims{
		"id":  strconv.FormatInt(operatorID, 10),
		"exp": time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return t, nil
}

// RequireOperator rejects requests without a valid operator token and stores the operator id in Locals.
func RequireOperator(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := operatorFromRequest(c, secret)
		if err != nil {
			return errorResponse(c, fmt.Errorf("%w: %s", ErrUnauthorized, err.Error()))
		}

		c.Locals(operatorKey, id)
		return c.Next()
	}
}

func operatorFromRequest(c *fiber.Ctx, secret string) (int64, error) {
	tokenString := c.Cookies("token")
	if h := c.Get(fiber.HeaderAuthorization); tokenString == "" && strings.HasPrefix(h, "Bearer ") {
		tokenString = strings.TrimPrefix(h, "Bearer ")
	}
	if tokenString == "" {
		return 0, fmt.Errorf("missing token")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	id, ok := claims["id"].(string)
	if !ok {
		return 0, fmt.Errorf("token without id claim")
	}
	return strconv.ParseInt(id, 10, 64)
}

func operatorID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(operatorKey).(int64)
	return id
}
