package forms_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fueltrack/internal/forms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequest_URLEncoded(t *testing.T) {
	body := url.Values{"make": {"Honda"}, "model": {"Fit"}}
	req := httptest.NewRequest(http.MethodPost, "/fuel/registration", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	sub, err := forms.FromRequest(req)
	require.NoError(t, err)

	v, ok := sub.Get("make")
	assert.True(t, ok)
	assert.Equal(t, "Honda", v)
	assert.Nil(t, sub.File("receipt"))
}

func TestFromRequest_Multipart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	require.NoError(t, w.WriteField("gallons", "10"))

	fw, err := w.CreateFormFile("receipt", "receipt.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/fuel/fuelup", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	sub, err := forms.FromRequest(req)
	require.NoError(t, err)

	v, ok := sub.Get("gallons")
	assert.True(t, ok)
	assert.Equal(t, "10", v)

	att := sub.File("receipt")
	require.NotNil(t, att)
	assert.Equal(t, "receipt.jpg", att.Filename)
	assert.Equal(t, []byte("jpegdata"), att.Data)
}

func TestGet_AbsentField(t *testing.T) {
	sub := forms.Submission{}

	_, ok := sub.Get("anything")
	assert.False(t, ok)
}
