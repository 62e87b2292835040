package tmux

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerVersionCached(t *testing.T) {
	t.Parallel()

	var calls int
	srv := Server{
		Driver: &driverStub{
			version: func() ([]byte, error) {
				calls++
				return []byte("tmux 3.3a\n"), nil
			},
		},
	}

	for i := 0; i < 3; i++ {
		v, err := srv.Version()
		require.NoError(t, err)
		assert.Equal(t, Version{Major: 3, Minor: 3, Suffix: "a"}, v)
	}
	assert.Equal(t, 1, calls)
}

func TestServerSessions(t *testing.T) {
	t.Parallel()

	srv := Server{
		Driver: &driverStub{
			listSessions: func(req ListSessionsRequest) ([]byte, error) {
				assert.NotEmpty(t, req.Format)
				return records(_sessionFormats,
					map[string]string{
						"session_id":       "$1",
						"session_name":     "work",
						"session_windows":  "3",
						"session_attached": "1",
					},
					map[string]string{
						"session_id":       "$2",
						"session_name":     "scratch",
						"session_windows":  "1",
						"session_attached": "0",
					},
				), nil
			},
		},
	}

	sessions, err := srv.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "$1", sessions[0].ID())
	assert.Equal(t, "work", sessions[0].Name())
	assert.Equal(t, 3, sessions[0].WindowCount())
	assert.True(t, sessions[0].Attached())

	assert.Equal(t, "$2", sessions[1].ID())
	assert.False(t, sessions[1].Attached())

	t.Run("attached only", func(t *testing.T) {
		attached, err := srv.AttachedSessions()
		require.NoError(t, err)
		require.Len(t, attached, 1)
		assert.Equal(t, "work", attached[0].Name())
	})

	t.Run("by ID", func(t *testing.T) {
		sess, err := srv.SessionByID("$2")
		require.NoError(t, err)
		assert.Equal(t, "scratch", sess.Name())

		_, err = srv.SessionByID("$99")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("by name", func(t *testing.T) {
		sess, err := srv.FindSession("work")
		require.NoError(t, err)
		assert.Equal(t, "$1", sess.ID())

		_, err = srv.FindSession("nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestServerHasSession(t *testing.T) {
	t.Parallel()

	t.Run("exact match on modern tmux", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(req HasSessionRequest) error {
					assert.Equal(t, "=work", req.Target)
					return nil
				},
			},
		}

		ok, err := srv.HasSession("work")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no prefix on old tmux", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("2.0"),
				hasSession: func(req HasSessionRequest) error {
					assert.Equal(t, "work", req.Target)
					return nil
				},
			},
		}

		ok, err := srv.HasSession("work")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "can't find session: work", errors.New("exit status 1"))
				},
			},
		}

		ok, err := srv.HasSession("work")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no server", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "no server running on /tmp/sock", errors.New("exit status 1"))
				},
			},
		}

		ok, err := srv.HasSession("work")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("bad name", func(t *testing.T) {
		t.Parallel()

		var srv Server
		_, err := srv.HasSession("foo:bar")
		assert.ErrorIs(t, err, ErrBadSessionName)
	})

	t.Run("other error", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "great sadness", errors.New("exit status 1"))
				},
			},
		}

		_, err := srv.HasSession("work")
		assert.Error(t, err)
	})
}

func TestServerNewSession(t *testing.T) {
	t.Parallel()

	newSessionOutput := func(id, name string) []byte {
		return records(_sessionFormats, map[string]string{
			"session_id":   id,
			"session_name": name,
		})
	}

	t.Run("default size outside client", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "no server running", errors.New("exit status 1"))
				},
				newSession: func(req NewSessionRequest) ([]byte, error) {
					assert.Equal(t, "work", req.Name)
					assert.True(t, req.Detached)
					assert.Equal(t, 800, req.Width)
					assert.Equal(t, 600, req.Height)
					return newSessionOutput("$1", "work"), nil
				},
			},
			getenv: func(string) string { return "" },
		}

		sess, err := srv.NewSession(NewSessionOptions{Name: "work"})
		require.NoError(t, err)
		assert.Equal(t, "$1", sess.ID())
		assert.Equal(t, "work", sess.Name())
	})

	t.Run("no default size inside client", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "can't find session", errors.New("exit status 1"))
				},
				newSession: func(req NewSessionRequest) ([]byte, error) {
					assert.Zero(t, req.Width)
					assert.Zero(t, req.Height)
					return newSessionOutput("$1", "work"), nil
				},
			},
			getenv: func(k string) string {
				if k == "TMUX" {
					return "/tmp/tmux-1000/default,123,0"
				}
				return ""
			},
		}

		_, err := srv.NewSession(NewSessionOptions{Name: "work"})
		require.NoError(t, err)
	})

	t.Run("no default size on old tmux", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("2.1"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "no server running", errors.New("exit status 1"))
				},
				newSession: func(req NewSessionRequest) ([]byte, error) {
					assert.Zero(t, req.Width)
					assert.Zero(t, req.Height)
					return newSessionOutput("$1", "work"), nil
				},
			},
			getenv: func(string) string { return "" },
		}

		_, err := srv.NewSession(NewSessionOptions{Name: "work"})
		require.NoError(t, err)
	})

	t.Run("explicit size wins", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error {
					return wrapCmdError("has-session", "no server running", errors.New("exit status 1"))
				},
				newSession: func(req NewSessionRequest) ([]byte, error) {
					assert.Equal(t, 120, req.Width)
					assert.Equal(t, 40, req.Height)
					return newSessionOutput("$1", "work"), nil
				},
			},
			getenv: func(string) string { return "" },
		}

		_, err := srv.NewSession(NewSessionOptions{Name: "work", Width: 120, Height: 40})
		require.NoError(t, err)
	})

	t.Run("already exists", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version:    versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error { return nil },
			},
			getenv: func(string) string { return "" },
		}

		_, err := srv.NewSession(NewSessionOptions{Name: "work"})
		assert.ErrorIs(t, err, ErrSessionExists)
	})

	t.Run("kill existing", func(t *testing.T) {
		t.Parallel()

		var killed bool
		srv := Server{
			Driver: &driverStub{
				version:    versionStub("3.3a"),
				hasSession: func(HasSessionRequest) error { return nil },
				killSession: func(req KillSessionRequest) error {
					killed = true
					assert.Equal(t, "work", req.Target)
					return nil
				},
				newSession: func(req NewSessionRequest) ([]byte, error) {
					return newSessionOutput("$2", "work"), nil
				},
			},
			getenv: func(string) string { return "" },
		}

		sess, err := srv.NewSession(NewSessionOptions{Name: "work", KillExisting: true})
		require.NoError(t, err)
		assert.True(t, killed)
		assert.Equal(t, "$2", sess.ID())
	})

	t.Run("bad name", func(t *testing.T) {
		t.Parallel()

		var srv Server
		_, err := srv.NewSession(NewSessionOptions{Name: "a.b"})
		assert.ErrorIs(t, err, ErrBadSessionName)
	})

	t.Run("anonymous session skips existence check", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				version: versionStub("3.3a"),
				newSession: func(req NewSessionRequest) ([]byte, error) {
					assert.Empty(t, req.Name)
					return newSessionOutput("$0", "0"), nil
				},
			},
			getenv: func(string) string { return "" },
		}

		sess, err := srv.NewSession(NewSessionOptions{})
		require.NoError(t, err)
		assert.Equal(t, "$0", sess.ID())
	})
}

func TestServerGlobalOptions(t *testing.T) {
	t.Parallel()

	srv := Server{
		Driver: &driverStub{
			showOptions: func(req ShowOptionsRequest) ([]byte, error) {
				assert.True(t, req.Global)
				return []byte("status on\nprefix C-b\n"), nil
			},
			setOption: func(req SetOptionRequest) error {
				assert.True(t, req.Global)
				assert.Equal(t, "status", req.Name)
				return nil
			},
		},
	}

	opts, err := srv.ShowOptions()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"status": "on", "prefix": "C-b"}, opts)

	v, err := srv.ShowOption("prefix")
	require.NoError(t, err)
	assert.Equal(t, "C-b", v)

	_, err = srv.ShowOption("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownOption)

	assert.NoError(t, srv.SetOption("status", "off"))
	assert.NoError(t, srv.UnsetOption("status"))
}

func TestServerGlobalEnvironment(t *testing.T) {
	t.Parallel()

	var setReqs []SetEnvironmentRequest
	srv := Server{
		Driver: &driverStub{
			showEnvironment: func(req ShowEnvironmentRequest) ([]byte, error) {
				assert.True(t, req.Global)
				return []byte("FOO=bar\n-GONE\n"), nil
			},
			setEnvironment: func(req SetEnvironmentRequest) error {
				setReqs = append(setReqs, req)
				return nil
			},
		},
	}

	env, err := srv.ShowEnvironment()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FOO": "bar"}, env)

	v, err := srv.ShowEnvironmentValue("FOO")
	require.NoError(t, err)
	assert.Equal(t, "bar", v)

	require.NoError(t, srv.SetEnvironment("FOO", "baz"))
	require.NoError(t, srv.UnsetEnvironment("FOO"))
	require.NoError(t, srv.RemoveEnvironment("FOO"))

	require.Len(t, setReqs, 3)
	assert.Equal(t, SetEnvironmentRequest{Global: true, Name: "FOO", Value: "baz"}, setReqs[0])
	assert.Equal(t, SetEnvironmentRequest{Global: true, Name: "FOO", Unset: true}, setReqs[1])
	assert.Equal(t, SetEnvironmentRequest{Global: true, Name: "FOO", Remove: true}, setReqs[2])
}

func TestServerAttachAndSwitch(t *testing.T) {
	t.Parallel()

	t.Run("attach", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				attachSession: func(req AttachSessionRequest) error {
					assert.Equal(t, "work", req.Target)
					return nil
				},
			},
		}
		assert.NoError(t, srv.AttachSession("work"))
	})

	t.Run("attach bad name", func(t *testing.T) {
		t.Parallel()

		var srv Server
		assert.ErrorIs(t, srv.AttachSession("a:b"), ErrBadSessionName)
	})

	t.Run("switch", func(t *testing.T) {
		t.Parallel()

		srv := Server{
			Driver: &driverStub{
				switchClient: func(req SwitchClientRequest) error {
					assert.Equal(t, "$1", req.Target)
					return nil
				},
			},
		}
		assert.NoError(t, srv.SwitchClient("$1"))
	})
}
