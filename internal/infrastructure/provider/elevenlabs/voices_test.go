package elevenlabs_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/application/port/mocks"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/infrastructure/httpclient"
	"github.com/bnema/includs/internal/infrastructure/provider/elevenlabs"
	"github.com/bnema/includs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestListVoices_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/voices", r.URL.Path)
		assert.Equal(t, "sk_abc123", r.Header.Get("xi-api-key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"voices":[
			{"voice_id":"v1","name":"Rachel","preview_url":"https://cdn.example/rachel.mp3","category":"premade"},
			{"voice_id":"v2","name":"Adam"}
		]}`))
	}))
	defer srv.Close()

	p := elevenlabs.NewProvider(httpclient.New(0, ""), srv.URL+"/")
	voices, err := p.ListVoices(testCtx(), "sk_abc123")
	require.NoError(t, err)
	assert.Equal(t, []entity.Voice{
		{ID: "v1", Name: "Rachel", PreviewURL: "https://cdn.example/rachel.mp3"},
		{ID: "v2", Name: "Adam"},
	}, voices)
}

func TestListVoices_EmptyList(t *testing.T) {
	client := mocks.NewMockHTTPClient(t)
	client.EXPECT().Get(mock.Anything, entity.DefaultElevenLabsBaseURL+"/v1/voices", mock.Anything).
		Return(&port.HTTPResponse{StatusCode: 200, Body: []byte(`{"voices":[]}`)}, nil).Once()

	voices, err := elevenlabs.NewProvider(client, "").ListVoices(testCtx(), "k")
	require.NoError(t, err)
	assert.NotNil(t, voices)
	assert.Empty(t, voices)
}

func TestListVoices_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    entity.ErrorKind
		message string
	}{
		{"detail object", 401, `{"detail":{"status":"invalid_api_key","message":"Invalid API key"}}`,
			entity.KindAuth, "ElevenLabs: Invalid API key"},
		{"detail string", 400, `{"detail":"voices_read permission missing"}`,
			entity.KindBadRequest, "ElevenLabs: voices_read permission missing"},
		{"no detail", 429, `{}`, entity.KindRateLimit, "ElevenLabs: Invalid key or missing permissions"},
		{"unparseable", 502, `<html>bad gateway</html>`, entity.KindProvider, "ElevenLabs error (502)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockHTTPClient(t)
			client.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
				Return(&port.HTTPResponse{StatusCode: tt.status, Body: []byte(tt.body)}, nil).Once()

			_, err := elevenlabs.NewProvider(client, "").ListVoices(testCtx(), "k")
			var ge *entity.GatewayError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tt.kind, ge.Kind)
			assert.Equal(t, tt.message, ge.Message)
			assert.Equal(t, tt.status, ge.StatusCode)
		})
	}
}

func TestListVoices_NetworkFailure(t *testing.T) {
	client := mocks.NewMockHTTPClient(t)
	client.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("no route to host")).Once()

	_, err := elevenlabs.NewProvider(client, "").ListVoices(testCtx(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNetwork)
	assert.Equal(t, "Could not connect to ElevenLabs: no route to host", err.Error())
}
