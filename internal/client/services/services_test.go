package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pliablepixels/zmng/internal/client/session"
	"github.com/pliablepixels/zmng/internal/client/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPIClient records the calls a service makes and serves canned
// responses.
type fakeAPIClient struct {
	gotDescriptor *transport.Descriptor
	gotPath       string
	gotParams     map[string]string

	resp *transport.Response
	err  error

	loginGrant *session.Grant
	loginUser  string
	loginPass  string
	logoutErr  error
}

func (f *fakeAPIClient) Do(ctx context.Context, d *transport.Descriptor) (*transport.Response, error) {
	f.gotDescriptor = d
	return f.resp, f.err
}

func (f *fakeAPIClient) Get(ctx context.Context, path string, params map[string]string) (*transport.Response, error) {
	f.gotPath = path
	f.gotParams = params
	return f.resp, f.err
}

func (f *fakeAPIClient) Delete(ctx context.Context, path string, params map[string]string) (*transport.Response, error) {
	f.gotPath = path
	f.gotParams = params
	return f.resp, f.err
}

func (f *fakeAPIClient) Login(ctx context.Context, username, password string) (*session.Grant, error) {
	f.loginUser = username
	f.loginPass = password
	return f.loginGrant, f.err
}

func (f *fakeAPIClient) Logout(ctx context.Context) error {
	return f.logoutErr
}

func jsonResponse(data any) *transport.Response {
	return &transport.Response{Data: data, Status: 200, StatusText: "OK"}
}

func TestMonitorService_List(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse(map[string]any{
		"monitors": []any{
			map[string]any{
				"Monitor":        map[string]any{"Id": "1", "Name": "Garage", "Function": "Modect", "Enabled": "1"},
				"Monitor_Status": map[string]any{"Status": "Connected"},
			},
			map[string]any{
				"Monitor": map[string]any{"Id": "2", "Name": "Porch", "Function": "Monitor", "Enabled": "0"},
			},
		},
	})}

	svc := NewMonitorService(fake, "https://h/cgi-bin")
	monitors, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/monitors.json", fake.gotPath)
	require.Len(t, monitors, 2)
	assert.Equal(t, "1", monitors[0].Monitor.ID)
	assert.Equal(t, "Garage", monitors[0].Monitor.Name)
	assert.Equal(t, "Connected", monitors[0].Status.Status)
	assert.Equal(t, "Porch", monitors[1].Monitor.Name)
}

func TestMonitorService_List_Error(t *testing.T) {
	fake := &fakeAPIClient{err: errors.New("boom")}
	svc := NewMonitorService(fake, "https://h/cgi-bin")

	_, err := svc.List(context.Background())
	require.Error(t, err)
}

func TestMonitorService_Snapshot(t *testing.T) {
	blob := &transport.Blob{ContentType: "image/jpeg", Bytes: []byte{0xff, 0xd8}}
	fake := &fakeAPIClient{resp: &transport.Response{Data: blob, Status: 200}}

	svc := NewMonitorService(fake, "https://h/cgi-bin")
	got, err := svc.Snapshot(context.Background(), "3")
	require.NoError(t, err)
	assert.Same(t, blob, got)

	d := fake.gotDescriptor
	require.NotNil(t, d)
	// The CGI lives on its own base, so the path is absolute.
	assert.Equal(t, "https://h/cgi-bin/nph-zms", d.Path)
	assert.Equal(t, transport.ResponseBlob, d.ResponseType)
	assert.Equal(t, "single", d.Params["mode"])
	assert.Equal(t, "3", d.Params["monitor"])
	assert.Equal(t, "100", d.Params["scale"])
}

func TestMonitorService_Snapshot_UnexpectedBodyShape(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse("not a blob")}
	svc := NewMonitorService(fake, "https://h/cgi-bin")

	_, err := svc.Snapshot(context.Background(), "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected body shape")
}

func TestEventService_List_AllMonitors(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse(map[string]any{
		"events": []any{
			map[string]any{"Event": map[string]any{"Id": "100", "MonitorId": "1", "Name": "Event-100", "Cause": "Motion"}},
		},
		"pagination": map[string]any{"page": float64(1), "pageCount": float64(5), "count": float64(91)},
	})}

	svc := NewEventService(fake)
	events, pagination, err := svc.List(context.Background(), "", 1)
	require.NoError(t, err)

	assert.Equal(t, "/events/index.json", fake.gotPath)
	assert.Equal(t, "StartTime", fake.gotParams["sort"])
	assert.Equal(t, "desc", fake.gotParams["direction"])
	assert.Equal(t, "1", fake.gotParams["page"])

	require.Len(t, events, 1)
	assert.Equal(t, "100", events[0].Event.ID)
	assert.Equal(t, "Motion", events[0].Event.Cause)
	require.NotNil(t, pagination)
	assert.Equal(t, 5, pagination.PageCount)
	assert.Equal(t, 91, pagination.Count)
}

func TestEventService_List_FilteredByMonitor(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse(map[string]any{"events": []any{}})}

	svc := NewEventService(fake)
	_, _, err := svc.List(context.Background(), "2", 3)
	require.NoError(t, err)

	assert.Equal(t, "/events/index/MonitorId:2.json", fake.gotPath)
	assert.Equal(t, "3", fake.gotParams["page"])
}

func TestEventService_Delete(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse(map[string]any{"success": true})}

	svc := NewEventService(fake)
	require.NoError(t, svc.Delete(context.Background(), "100"))
	assert.Equal(t, "/events/100.json", fake.gotPath)
}

func TestHostService_Version(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse(map[string]any{
		"version":    "1.36.12",
		"apiversion": "2.0",
	})}

	svc := NewHostService(fake)
	v, err := svc.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/host/getVersion.json", fake.gotPath)
	assert.Equal(t, "1.36.12", v.Version)
	assert.Equal(t, "2.0", v.APIVersion)
}

func TestHostService_DaemonRunning(t *testing.T) {
	fake := &fakeAPIClient{resp: jsonResponse(map[string]any{"result": float64(1)})}
	svc := NewHostService(fake)

	running, err := svc.DaemonRunning(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/host/daemonCheck.json", fake.gotPath)
	assert.True(t, running)

	fake.resp = jsonResponse(map[string]any{"result": float64(0)})
	running, err = svc.DaemonRunning(context.Background())
	require.NoError(t, err)
	assert.False(t, running)
}

func TestHostService_LoginDelegates(t *testing.T) {
	fake := &fakeAPIClient{loginGrant: &session.Grant{AccessToken: "A1"}}
	svc := NewHostService(fake)

	grant, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", fake.loginUser)
	assert.Equal(t, "secret", fake.loginPass)
	assert.Equal(t, "A1", grant.AccessToken)
}
