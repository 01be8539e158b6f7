package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-project/internal/requests"
	"os-project/internal/responses"
)

const baseURL = "http://scheduler.local:9095"

func TestClient_Simulate(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	request := requests.ScheduleRequest{
		Policy: "srtf",
		Jobs:   []requests.Job{{ProcessId: "P1", BurstTime: 3, ArrivalTime: 5}},
	}

	tests := []struct {
		name    string
		expects func()
		want    responses.ScheduleResponse
		wantErr string
	}{
		{
			name: "simulation succeeds",
			expects: func() {
				httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/v1/simulate",
					func(req *http.Request) (*http.Response, error) {
						var got requests.ScheduleRequest
						if err := decodeBody(req, &got); err != nil {
							return httpmock.NewStringResponse(http.StatusTeapot, ""), nil
						}
						if got.Policy != "srtf" || len(got.Jobs) != 1 {
							return httpmock.NewStringResponse(http.StatusTeapot, ""), nil
						}
						return httpmock.NewJsonResponse(http.StatusOK, responses.ScheduleResponse{
							Policy:     "srtf",
							Preemptive: true,
							TotalTime:  8,
							Timeline: []responses.SnapshotResponse{
								{Idle: true, Start: 0, End: 5},
								{ProcessId: "P1", Start: 5, End: 8},
							},
						})
					})
			},
			want: responses.ScheduleResponse{
				Policy:     "srtf",
				Preemptive: true,
				TotalTime:  8,
				Timeline: []responses.SnapshotResponse{
					{Idle: true, Start: 0, End: 5},
					{ProcessId: "P1", Start: 5, End: 8},
				},
			},
		},
		{
			name: "server rejects the request",
			expects: func() {
				httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/v1/simulate",
					httpmock.NewStringResponder(http.StatusBadRequest, `{"error":"duplicate process identifier: P1"}`))
			},
			wantErr: "duplicate process identifier: P1",
		},
		{
			name: "server error without body",
			expects: func() {
				httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/v1/simulate",
					httpmock.NewStringResponder(http.StatusInternalServerError, ""))
			},
			wantErr: "Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			tt.expects()

			c := New(baseURL+"/", time.Second)
			got, err := c.Simulate(context.Background(), request)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestClient_SimulateAll(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, baseURL+"/api/v1/all",
		httpmock.NewStringResponder(http.StatusOK, `{"sjf":{"policy":"sjf"},"srtf":{"policy":"srtf","preemptive":true}}`))

	got, err := New(baseURL, time.Second).SimulateAll(context.Background(), requests.ScheduleRequest{})
	require.NoError(t, err)
	assert.Equal(t, map[string]responses.ScheduleResponse{
		"sjf":  {Policy: "sjf"},
		"srtf": {Policy: "srtf", Preemptive: true},
	}, got)
}

func decodeBody(req *http.Request, out any) error {
	return json.NewDecoder(req.Body).Decode(out)
}
