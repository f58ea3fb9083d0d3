package persist

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/yardsale/internal/models"
)

func sampleDataset() models.Dataset {
	return models.Dataset{
		Sellers:    []models.Seller{{ID: "s1", Name: "Alice"}, {ID: "s2", Name: ""}},
		QuickItems: []models.QuickItem{{ID: "q1", Name: "Mug", Amount: 2.5, SellerID: "s1"}},
		SoldItems: []models.SoldItem{
			{ID: "x1", Name: "Lamp", Amount: 12.99, SellerID: "s1", Timestamp: 1700000000000},
			{ID: "x2", Name: "", Amount: 0.25, SellerID: "s2", Timestamp: 1700000000001},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ds := sampleDataset()
	data, err := Encode(ds)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"sellers\": [", "pretty-printed")

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, ds, *got)

	empty, err := Encode(models.Dataset{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"sellers":[],"quickItems":[],"soldItems":[]}`, string(empty))
	got, err = Decode(empty)
	require.NoError(t, err)
	assert.Equal(t, models.Dataset{}.Clone(), *got)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		syntax bool
	}{
		{"missing soldItems", `{"sellers":[],"quickItems":[]}`, false},
		{"null list", `{"sellers":null,"quickItems":[],"soldItems":[]}`, false},
		{"object instead of list", `{"sellers":{},"quickItems":[],"soldItems":[]}`, false},
		{"string instead of list", `{"sellers":"[]","quickItems":[],"soldItems":[]}`, false},
		{"top-level array", `[1,2,3]`, false},
		{"top-level null", `null`, false},
		{"mistyped element", `{"sellers":[{"id":5,"name":"x"}],"quickItems":[],"soldItems":[]}`, false},
		{"amount as string", `{"sellers":[],"quickItems":[{"id":"q","amount":"2.5","sellerId":"s"}],"soldItems":[]}`, false},
		{"not json", `sellers: []`, true},
		{"truncated", `{"sellers":[`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			var invalid *InvalidFormatError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.syntax, invalid.Syntax)
		})
	}
}

// fakeTier records calls and returns canned results.
type fakeTier struct {
	name    string
	saveErr error
	payload []byte
	loadErr error
	saved   []byte
}

func (f *fakeTier) Name() string { return f.name }
func (f *fakeTier) Save(_ context.Context, p []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = p
	return nil
}
func (f *fakeTier) Load(context.Context) ([]byte, error) { return f.payload, f.loadErr }

func TestGatewayFallsBackOnUnsupported(t *testing.T) {
	ctx := context.Background()
	native := &fakeTier{name: "file", saveErr: ErrEnvironmentUnsupported, loadErr: ErrEnvironmentUnsupported}
	modal := &fakeTier{name: "modal"}
	g := New(native, modal)

	tier, err := g.Save(ctx, sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "modal", tier)
	require.NotEmpty(t, modal.saved)

	modal.payload = modal.saved
	ds, tier, err := g.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "modal", tier)
	assert.Equal(t, sampleDataset(), *ds)
}

func TestGatewayCancelledIsNotDemoted(t *testing.T) {
	ctx := context.Background()
	native := &fakeTier{name: "file", saveErr: ErrUserCancelled, loadErr: ErrUserCancelled}
	modal := &fakeTier{name: "modal"}
	g := New(native, modal)

	tier, err := g.Save(ctx, sampleDataset())
	assert.ErrorIs(t, err, ErrUserCancelled)
	assert.Equal(t, "file", tier)
	assert.Nil(t, modal.saved)

	_, _, err = g.Load(ctx)
	assert.ErrorIs(t, err, ErrUserCancelled)
}

func TestGatewayRejectsInvalidPayload(t *testing.T) {
	g := New(&fakeTier{name: "modal", payload: []byte(`{"sellers":[],"quickItems":[]}`)})
	ds, _, err := g.Load(context.Background())
	assert.Nil(t, ds)
	var invalid *InvalidFormatError
	assert.ErrorAs(t, err, &invalid)
}

func TestGatewayWithoutTiers(t *testing.T) {
	g := New()
	_, err := g.Save(context.Background(), models.Dataset{})
	assert.ErrorIs(t, err, ErrEnvironmentUnsupported)
	_, _, err = g.Load(context.Background())
	assert.ErrorIs(t, err, ErrEnvironmentUnsupported)
}

func TestFileTierRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "exports", SuggestedName)
	g := New(FileTier{Picker: FilePicker{Path: path}})

	tier, err := g.Save(ctx, sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "file", tier)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n"))

	ds, _, err := g.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), *ds)
}

func TestFileTierWithoutPathIsUnsupported(t *testing.T) {
	tier := FileTier{Picker: FilePicker{}}
	assert.ErrorIs(t, tier.Save(context.Background(), []byte("{}")), ErrEnvironmentUnsupported)
	_, err := tier.Load(context.Background())
	assert.ErrorIs(t, err, ErrEnvironmentUnsupported)
}

type deniedPicker struct{}

func (deniedPicker) Create(context.Context) (io.WriteCloser, error) {
	return nil, &fs.PathError{Op: "open", Path: "/sandbox", Err: fs.ErrPermission}
}
func (deniedPicker) Open(context.Context) (io.ReadCloser, error) {
	return nil, &fs.PathError{Op: "open", Path: "/sandbox", Err: fs.ErrPermission}
}

func TestPermissionErrorDemotesToModal(t *testing.T) {
	var out bytes.Buffer
	g := New(FileTier{Picker: deniedPicker{}}, ModalTier{Modal: StreamModal{Out: &out}})

	tier, err := g.Save(context.Background(), sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "modal", tier)

	ds, err := Decode(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sampleDataset(), *ds)
}

func TestMissingFileIsAnError(t *testing.T) {
	tier := FileTier{Picker: FilePicker{Path: filepath.Join(t.TempDir(), "absent.json")}}
	_, err := tier.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrEnvironmentUnsupported))
}

func TestStreamModalCollect(t *testing.T) {
	m := StreamModal{In: strings.NewReader("  \n")}
	_, err := m.Collect(context.Background())
	assert.ErrorIs(t, err, ErrUserCancelled)

	m = StreamModal{In: strings.NewReader(`{"sellers":[],"quickItems":[],"soldItems":[]}`)}
	ds, _, err := New(ModalTier{Modal: m}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ds.Sellers)
}
