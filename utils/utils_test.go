package utils_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/utils"
)

var secret = []byte("test-secret")

func signed(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func requestWithAuth(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/assemblies", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func Test_VerifyToken_PrefersEmailClaim(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "cm-d@example.org",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	actor, err := utils.VerifyToken(requestWithAuth("Bearer "+token), secret)

	require.NoError(t, err)
	assert.Equal(t, "cm-d@example.org", actor)
}

func Test_VerifyToken_FallsBackToSubject(t *testing.T) {
	token := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "user-1"})

	actor, err := utils.VerifyToken(requestWithAuth("Bearer "+token), secret)

	require.NoError(t, err)
	assert.Equal(t, "user-1", actor)
}

func Test_VerifyToken_Rejections(t *testing.T) {
	expired := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()})
	wrongKey := signed(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u"})
	noActor := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"role": "admin"})

	cases := []struct {
		name   string
		header string
		want   error
	}{
		{"missing header", "", utils.ErrMissingAuthorization},
		{"not bearer", "Basic abc", utils.ErrMalformedAuthorization},
		{"expired", "Bearer " + expired, utils.ErrInvalidToken},
		{"wrong key", "Bearer " + wrongKey, utils.ErrInvalidToken},
		{"no actor", "Bearer " + noActor, utils.ErrMissingActor},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := utils.VerifyToken(requestWithAuth(tc.header), secret)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func Test_RespondWithError_WritesStatusAndMessage(t *testing.T) {
	w := httptest.NewRecorder()

	utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Assembly not found"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var body models.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Assembly not found", body.Message)
}

type fakeS3 struct {
	s3iface.S3API
	deleted []s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *in)
	return &s3.DeleteObjectOutput{}, f.err
}

func Test_S3Storage_DeleteAcceptsKeyOrURL(t *testing.T) {
	client := &fakeS3{}
	storage := utils.NewS3StorageWithClient(client, "receipts", "sa-east-1")

	require.NoError(t, storage.Delete(context.Background(), "receipts/r1.pdf"))
	require.NoError(t, storage.Delete(context.Background(), "https://receipts.s3.sa-east-1.amazonaws.com/receipts/r2.pdf"))

	require.Len(t, client.deleted, 2)
	assert.Equal(t, "receipts/r1.pdf", aws.StringValue(client.deleted[0].Key))
	assert.Equal(t, "receipts/r2.pdf", aws.StringValue(client.deleted[1].Key))
	assert.Equal(t, "receipts", aws.StringValue(client.deleted[1].Bucket))
}

func Test_S3Storage_DeleteWrapsClientError(t *testing.T) {
	boom := errors.New("access denied")
	storage := utils.NewS3StorageWithClient(&fakeS3{err: boom}, "receipts", "sa-east-1")

	err := storage.Delete(context.Background(), "r1.pdf")

	assert.ErrorIs(t, err, boom)
}

func Test_NewS3Storage_DisabledWithoutBucket(t *testing.T) {
	_, err := utils.NewS3Storage(utils.S3Config{Region: "sa-east-1"})

	assert.ErrorIs(t, err, utils.ErrStorageDisabled)
	assert.ErrorIs(t, utils.DisabledStorage{}.Delete(context.Background(), "x"), utils.ErrStorageDisabled)
}
