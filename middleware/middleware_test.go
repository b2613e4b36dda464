package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawmart/globals"

	"github.com/julienschmidt/httprouter"
)

func TestTokenRoundTrip(t *testing.T) {
	Init([]byte("test_signing_secret"))

	token, err := GenerateToken("64f0c2example0000userid0")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "64f0c2example0000userid0" {
		t.Fatalf("expected embedded user id, got %q", claims.UserID)
	}
}

func TestValidateJWTRejectsForgedToken(t *testing.T) {
	Init([]byte("test_signing_secret"))
	token, _ := GenerateToken("someuser")

	Init([]byte("a_different_secret"))
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func authTestRequest(t *testing.T, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID, _ = r.Context().Value(globals.UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/addtocart", nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code == http.StatusOK && gotUserID == "" {
		t.Fatal("handler ran without a user id in context")
	}
	return rec
}

func TestAuthenticate(t *testing.T) {
	Init([]byte("test_signing_secret"))
	token, err := GenerateToken("u123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// missing token
	rec := authTestRequest(t, http.Header{})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", rec.Code)
	}

	// garbage token
	rec = authTestRequest(t, http.Header{"Auth-Token": {"not.a.jwt"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: expected 401, got %d", rec.Code)
	}

	// valid token in the storefront header
	rec = authTestRequest(t, http.Header{"Auth-Token": {token}})
	if rec.Code != http.StatusOK {
		t.Fatalf("auth-token header: expected 200, got %d", rec.Code)
	}

	// valid token as a bearer header
	rec = authTestRequest(t, http.Header{"Authorization": {"Bearer " + token}})
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer header: expected 200, got %d", rec.Code)
	}
}
