package sftpclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type Config struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	RemoteDir             string
	InsecureIgnoreHostKey bool
}

func (cfg Config) withDefaults() (Config, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Pass == "" {
		return cfg, fmt.Errorf("sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
	}
	if cfg.Port <= 0 {
		cfg.Port = 22
	}
	if cfg.RemoteDir == "" {
		cfg.RemoteDir = "/"
	}
	return cfg, nil
}

// dial opens an SSH connection under ctx so a cancel/timeout interrupts the
// handshake.
func dial(ctx context.Context, cfg Config) (*ssh.Client, error) {
	cb := ssh.InsecureIgnoreHostKey()
	if !cfg.InsecureIgnoreHostKey {
		// TODO: replace with a known_hosts callback once the registrar's
		// host key is pinned.
		cb = ssh.InsecureIgnoreHostKey()
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            []ssh.AuthMethod{ssh.Password(cfg.Pass)},
		HostKeyCallback: cb,
		Timeout:         20 * time.Second,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	type dialRes struct {
		client *ssh.Client
		err    error
	}
	ch := make(chan dialRes, 1)
	go func() {
		c, err := ssh.Dial("tcp", addr, sshCfg)
		ch <- dialRes{client: c, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("sftp: dial canceled: %w", ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return nil, fmt.Errorf("sftp: dial error: %w", r.err)
		}
		return r.client, nil
	}
}

// UploadFile copies localPath to cfg.RemoteDir/remoteFileName, creating the
// remote directory if needed.
func UploadFile(ctx context.Context, cfg Config, localPath string, remoteFileName string) error {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	sshClient, err := dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	if err := sftpCli.MkdirAll(cfg.RemoteDir); err != nil {
		return fmt.Errorf("sftp: mkdir %s: %w", cfg.RemoteDir, err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer src.Close()

	remotePath := path.Join(cfg.RemoteDir, remoteFileName)
	dst, err := sftpCli.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: create remote file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("sftp: upload copy: %w", err)
	}

	return nil
}

// DownloadFile copies cfg.RemoteDir/remoteFileName to localPath. Used to
// fetch the course data file before a load.
func DownloadFile(ctx context.Context, cfg Config, remoteFileName string, localPath string) error {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	sshClient, err := dial(ctx, cfg)
	if err != nil {
		return err
	}
	defer sshClient.Close()

	sftpCli, err := sftp.NewClient(sshClient)
	if err != nil {
		return fmt.Errorf("sftp: new client: %w", err)
	}
	defer sftpCli.Close()

	remotePath := path.Join(cfg.RemoteDir, remoteFileName)
	src, err := sftpCli.Open(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: open remote file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("sftp: create local file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("sftp: download copy: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close local file: %w", err)
	}

	return nil
}
