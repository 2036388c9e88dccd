//go:build linux || darwin

/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package posix_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"dirpx.dev/statuscode"
	"dirpx.dev/statuscode/errc"
	"dirpx.dev/statuscode/posix"
)

func TestGenericMapping(t *testing.T) {
	tests := []struct {
		errno unix.Errno
		want  errc.Errc
	}{
		{0, errc.Success},
		{unix.ENOENT, errc.NoSuchFileOrDirectory},
		{unix.ENOSPC, errc.NoSpaceOnDevice},
		{unix.EAGAIN, errc.ResourceUnavailableTryAgain},
		{unix.EWOULDBLOCK, errc.ResourceUnavailableTryAgain},
		{unix.EOPNOTSUPP, errc.NotSupported},
		{unix.ETIMEDOUT, errc.TimedOut},
		{unix.ENOTRECOVERABLE, errc.StateNotRecoverable},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			c := posix.Code(tt.errno)
			g := c.GenericCode()
			require.False(t, g.Empty())
			require.Equal(t, tt.want, g.Value())
			require.True(t, c.Equal(statuscode.Generic(tt.want)))
			require.True(t, statuscode.Generic(tt.want).Equal(c))
		})
	}
}

func TestUnmappedErrno(t *testing.T) {
	c := posix.Code(unix.Errno(4095))
	require.True(t, c.Failure())
	require.True(t, c.GenericCode().Empty())
	require.False(t, c.Equal(statuscode.Generic(errc.IOError)))
	require.NotEmpty(t, c.Message())
}

func TestUnmappedErrnoMessagesAreNotCached(t *testing.T) {
	c := posix.Code(unix.Errno(4095))
	r1, r2 := c.MessageRef(), c.MessageRef()
	defer r1.Release()
	defer r2.Release()

	require.Equal(t, unix.Errno(4095).Error(), r1.String())
	require.True(t, r1.Equal(r2))
	require.Equal(t, int64(1), r1.Refs())
	require.Equal(t, int64(1), r2.Refs())
}

func TestSuccessAndFailure(t *testing.T) {
	require.True(t, posix.Code(0).Success())
	require.Equal(t, "success", posix.Code(0).Message())
	require.True(t, posix.Code(unix.EPERM).Failure())
	require.False(t, posix.Code(unix.EPERM).Equal(posix.Code(unix.EACCES)))
	require.True(t, posix.Code(unix.EPERM).Equal(posix.Code(unix.EPERM)))
}

func TestMessageMatchesErrno(t *testing.T) {
	c := posix.Code(unix.ENOSPC)
	require.Equal(t, unix.ENOSPC.Error(), c.Message())

	r1, r2 := c.MessageRef(), c.MessageRef()
	defer r1.Release()
	defer r2.Release()
	require.True(t, r1.Owned())
	require.Equal(t, r1.Refs(), r2.Refs())
	require.True(t, r1.Equal(r2))
}

func TestMessageSharesAreReturned(t *testing.T) {
	c := posix.Code(unix.EMLINK)
	first := c.MessageRef()
	base := first.Refs()

	held := c.MessageRef()
	require.Equal(t, base+1, first.Refs())
	held.Release()
	require.Equal(t, base, first.Refs())

	_ = c.Message()
	require.Equal(t, base, first.Refs())
	first.Release()
}

func TestFromError(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	c, ok := posix.FromError(err)
	require.True(t, ok)
	require.Equal(t, unix.ENOENT, c.Value())
	require.True(t, c.Equal(statuscode.Generic(errc.NoSuchFileOrDirectory)))

	_, ok = posix.FromError(errors.New("plain"))
	require.False(t, ok)
}

func TestErr(t *testing.T) {
	cause := fmt.Errorf("flush: %w", unix.ENOSPC)
	err := posix.Err(cause)

	var se *statuscode.Error
	require.ErrorAs(t, err, &se)
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, statuscode.Generic(errc.NoSpaceOnDevice).Err())

	plain := errors.New("plain")
	require.Same(t, plain, posix.Err(plain))
	require.NoError(t, posix.Err(nil))
}

func TestConcurrentMessages(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range []unix.Errno{unix.EIO, unix.EBUSY, unix.EPIPE, unix.ENOTDIR} {
				if got := posix.Code(e).Message(); got != e.Error() {
					t.Errorf("message(%d) = %q", e, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegistryDecode(t *testing.T) {
	reg, err := statuscode.NewRegistry(posix.Domain)
	require.NoError(t, err)

	c, err := reg.Decode(posix.ID, uint64(unix.EACCES))
	require.NoError(t, err)
	require.True(t, c.Equal(statuscode.Generic(errc.PermissionDenied)))
	require.Equal(t, "posix.errno: "+unix.EACCES.Error(), c.String())
}
