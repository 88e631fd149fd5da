package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/designpatterns/core/metrics"
)

func TestHandler_ExposesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry("", reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordDispatch(coremetrics.DispatchEvent{Handler: "general", RequestType: "GENERAL", Handled: true}))

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()
	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `support_requests_total{handled="true",handler="general",request_type="GENERAL"} 1`)
}
