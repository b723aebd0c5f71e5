package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/at-ishikawa/wordwise/internal/mocks/cli"
)

func TestInteractiveCLI_Run(t *testing.T) {
	tests := []struct {
		name         string
		setupSession func(session *mock_cli.MockSession)
		wantErr      bool
	}{
		{
			name: "runs sessions until the end",
			setupSession: func(session *mock_cli.MockSession) {
				gomock.InOrder(
					session.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					session.EXPECT().Session(gomock.Any()).Return(errEnd),
				)
			},
		},
		{
			name: "stops on an error",
			setupSession: func(session *mock_cli.MockSession) {
				session.EXPECT().Session(gomock.Any()).Return(errors.New("broken terminal"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			session := mock_cli.NewMockSession(ctrl)
			tt.setupSession(session)

			cli := newInteractiveCLI(strings.NewReader(""), &bytes.Buffer{})
			err := cli.Run(context.Background(), session)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInteractiveCLI_confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\n", want: false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var stdout bytes.Buffer
			cli := newInteractiveCLI(strings.NewReader(tt.input), &stdout)
			got, err := cli.confirm("Continue?")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Continue? [y/N]: ", stdout.String())
		})
	}
}
