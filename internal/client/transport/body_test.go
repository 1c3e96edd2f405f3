package transport

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeBody_Nil(t *testing.T) {
	body, ct, err := ShapeBody(nil)
	require.NoError(t, err)
	assert.Equal(t, "", body)
	assert.Equal(t, "", ct)
}

func TestShapeBody_StringPassedThrough(t *testing.T) {
	body, ct, err := ShapeBody("user=admin&pass=secret")
	require.NoError(t, err)
	assert.Equal(t, "user=admin&pass=secret", body)
	assert.Equal(t, "", ct)
}

func TestShapeBody_FormValues(t *testing.T) {
	v := url.Values{}
	v.Set("user", "admin")
	v.Set("pass", "s3cr&t")

	body, ct, err := ShapeBody(v)
	require.NoError(t, err)
	assert.Equal(t, "pass=s3cr%26t&user=admin", body)
	assert.Equal(t, "application/x-www-form-urlencoded", ct)
}

func TestShapeBody_JSONFallback(t *testing.T) {
	body, ct, err := ShapeBody(map[string]string{"Name": "Garage"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Name":"Garage"}`, body)
	assert.Equal(t, "application/json", ct)
}

func TestShapeBody_UnserializableValue(t *testing.T) {
	_, _, err := ShapeBody(func() {})
	require.Error(t, err)
}
