package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/publisher"
	"github.com/mark3labs/postr/internal/tui/postwizard"
	"github.com/mark3labs/postr/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestSubmitPost_Success(t *testing.T) {
	e := testfixtures.NewEndpoint(t, http.StatusCreated, `{"id": 101}`)
	client := publisher.NewClient(e.URL, testfixtures.FixedUserID)

	var out bytes.Buffer
	err := submitPost(context.Background(), &out, client, testfixtures.ValidValues())
	require.NoError(t, err)
	require.Equal(t, "Success.\nCreated post 101\n", out.String())

	reqs := e.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, testfixtures.FixedPayload, reqs[0].Body)
}

func TestSubmitPost_Invalid(t *testing.T) {
	sub := testfixtures.NewMockSubmitter()

	var out bytes.Buffer
	err := submitPost(context.Background(), &out, sub, post.Values{Title: "H"})
	require.ErrorIs(t, err, errInvalidPost)
	require.Equal(t, 0, sub.CallCount())
	require.Equal(t, "title: "+post.MsgTooShort+"\nbody: "+post.MsgBodyRequired+"\n", out.String())
}

func TestSubmitPost_Failure(t *testing.T) {
	sub := testfixtures.NewMockSubmitter()
	sub.Err = testfixtures.MissingIDError()

	var out bytes.Buffer
	err := submitPost(context.Background(), &out, sub, testfixtures.ValidValues())
	kind, ok := publisher.KindOf(err)
	require.True(t, ok)
	require.Equal(t, publisher.KindMissingID, kind)
	require.Equal(t, "Error.\n", out.String())
}

func TestReadBody(t *testing.T) {
	got, err := readBody("-", strings.NewReader("from stdin\n"))
	require.NoError(t, err)
	require.Equal(t, "from stdin\n", got)

	path := filepath.Join(t.TempDir(), "body.md")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0644))
	got, err = readBody(path, nil)
	require.NoError(t, err)
	require.Equal(t, "from file", got)

	_, err = readBody(filepath.Join(t.TempDir(), "missing.md"), nil)
	require.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, &postwizard.Result{
		Receipts: []*publisher.Receipt{testfixtures.AcceptedReceipt()},
		Failures: 2,
	})
	require.Equal(t, "Created post 101\n2 submission(s) failed\n", out.String())
}
