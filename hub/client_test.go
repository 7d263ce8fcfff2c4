package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidhq/go-insteon/plm"
)

func TestClient_Poll(t *testing.T) {
	payload := "0262AABBCC0F190006" + "0250AABBCC1122332F1980"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/buffstatus.xml", r.URL.Path)
		_, _ = w.Write([]byte(bufferResponse(payload)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	acks, err := c.Poll(context.Background())
	require.NoError(t, err)
	require.Len(t, acks, 1)
	assert.Equal(t, plm.DeviceID("AABBCC"), acks[0].Device)
	require.Len(t, acks[0].Responses, 1)
	assert.Equal(t, "status", acks[0].Responses[0].Type.String())

	assert.Equal(t, uint64(1), c.Metrics().PollCount.Load())
	assert.Equal(t, uint64(1), c.Metrics().AckCount.Load())
}

func TestClient_Poll_MissingEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<response>no buffer here</response>"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Poll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedStatus)
	assert.Equal(t, uint64(1), c.Metrics().PollErrCount.Load())
}

func TestClient_Poll_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.Poll(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestExtractBuffer(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "strips fixed trailer",
			body: "<BS>0262AABBCC0F110006XY</BS>",
			want: "0262AABBCC0F110006",
		},
		{
			name: "payload of only the trailer",
			body: "<BS>XY</BS>",
			want: "",
		},
		{
			name: "empty payload",
			body: "<BS></BS>",
			want: "",
		},
		{
			name:    "missing open tag",
			body:    "0262AABBCC</BS>",
			wantErr: true,
		},
		{
			name:    "missing close tag",
			body:    "<BS>0262AABBCC",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractBuffer(tt.body)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_ClearBuffer(t *testing.T) {
	var gotURI string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	require.NoError(t, c.ClearBuffer(context.Background()))
	assert.Equal(t, "/1?XB=M=1", gotURI)
}

func TestClient_Commands(t *testing.T) {
	var gotURIs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURIs = append(gotURIs, r.URL.RequestURI())
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	ctx := context.Background()
	device := plm.DeviceID("AABBCC")

	require.NoError(t, c.TurnOn(ctx, device))
	require.NoError(t, c.TurnOnLevel(ctx, device, 50))
	require.NoError(t, c.TurnOff(ctx, device))
	require.NoError(t, c.RequestStatus(ctx, device))
	require.NoError(t, c.FastOn(ctx, device))
	require.NoError(t, c.FastOff(ctx, device))

	assert.Equal(t, []string{
		"/3?0262aabbcc0f11ff=I=3",
		"/3?0262aabbcc0f117f=I=3",
		"/3?0262aabbcc0f1300=I=3",
		"/3?0262aabbcc0f1900=I=3",
		"/3?0262aabbcc0f12ff=I=3",
		"/3?0262aabbcc0f1400=I=3",
	}, gotURIs)

	assert.Equal(t, uint64(6), c.Metrics().CommandSendCount.Load())
}

func TestClient_SendCommand_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	err := c.TurnOn(context.Background(), "AABBCC")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, uint64(0), c.Metrics().CommandSendCount.Load())
}
