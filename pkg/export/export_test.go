package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fern-ui/fern/pkg/vdom"
)

func aboutPage(vdom.Props) *vdom.VNode {
	return vdom.Main(vdom.H1("about"), vdom.P("static"))
}

func TestPathToKey(t *testing.T) {
	cases := []struct{ path, want string }{
		{"/", "index.html"},
		{"", "index.html"},
		{"/about", "about/index.html"},
		{"/docs/intro", "docs/intro/index.html"},
		{"/404.html", "404.html"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PathToKey(c.path), "path %q", c.path)
	}
}

func TestExportToDir(t *testing.T) {
	dir := t.TempDir()
	e := New([]Page{
		{Path: "/", Title: "Home", Component: aboutPage},
		{Path: "/about", Title: "About", Component: aboutPage},
	})

	err := e.Run(context.Background(), NewDirPublisher(dir))
	require.NoError(t, err)

	home, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "<title>Home</title>")
	assert.Contains(t, string(home), "<h1>about</h1>")

	about, err := os.ReadFile(filepath.Join(dir, "about", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(about), "<title>About</title>")
}

func TestExportHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New([]Page{{Path: "/", Title: "Home", Component: aboutPage}})
	err := e.Run(ctx, NewDirPublisher(t.TempDir()))
	assert.ErrorIs(t, err, context.Canceled)
}

type capturePut struct {
	inputs []*s3.PutObjectInput
}

func (c *capturePut) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	c.inputs = append(c.inputs, in)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Publisher(t *testing.T) {
	capture := &capturePut{}
	pub := NewS3Publisher(capture, "my-site", "public/")

	err := pub.Publish(context.Background(), "about/index.html", "text/html; charset=utf-8", []byte("<p>hi</p>"))
	require.NoError(t, err)

	require.Len(t, capture.inputs, 1)
	in := capture.inputs[0]
	assert.Equal(t, "my-site", *in.Bucket)
	assert.Equal(t, "public/about/index.html", *in.Key)
	assert.Equal(t, "text/html; charset=utf-8", *in.ContentType)

	body, err := io.ReadAll(in.Body)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))
	assert.True(t, strings.HasSuffix(in.Metadata["export-time"], "Z"))
}

func TestExportThroughS3Publisher(t *testing.T) {
	capture := &capturePut{}
	e := New([]Page{{Path: "/about", Title: "About", Component: aboutPage}})

	err := e.Run(context.Background(), NewS3Publisher(capture, "my-site", ""))
	require.NoError(t, err)

	require.Len(t, capture.inputs, 1)
	assert.Equal(t, "about/index.html", *capture.inputs[0].Key)
}
