package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/user"
	"strconv"
	"strings"

	"9fans.net/go/acme"
	"gopkg.in/errgo.v1"
)

// acmeSelection returns the text selected in the
// acme window that qc was run from.
func acmeSelection() (string, error) {
	win, err := acmeCurrentWin()
	if err != nil {
		return "", err
	}
	defer win.CloseFiles()
	if err := win.Ctl("addr=dot"); err != nil {
		return "", errgo.Notef(err, "cannot set acme address")
	}
	var buf bytes.Buffer
	if err := copyFile(&buf, win, "xdata"); err != nil {
		return "", errgo.Notef(err, "cannot read acme selection")
	}
	return buf.String(), nil
}

// We would use io.Copy except for a bug in acme
// where it crashes when reading trying to read more
// than the negotiated 9P message size.
func copyFile(w io.Writer, win *acme.Win, file string) error {
	buf := make([]byte, 8000)
	for {
		n, err := win.Read(file, buf)
		if n > 0 {
			if _, werr := w.Write(buf[0:n]); werr != nil {
				return errgo.Notef(werr, "write error")
			}
		}
		if err == io.EOF || (err == nil && n == 0) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func acmeCurrentWin() (*acme.Win, error) {
	winid := os.Getenv("winid")
	if winid == "" {
		return nil, errgo.New("$winid not set - not running inside acme?")
	}
	id, err := strconv.Atoi(winid)
	if err != nil {
		return nil, errgo.Newf("invalid $winid %q", winid)
	}
	if err := setNameSpace(); err != nil {
		return nil, err
	}
	win, err := acme.Open(id, nil)
	if err != nil {
		return nil, errgo.Notef(err, "cannot open acme window")
	}
	return win, nil
}

func setNameSpace() error {
	if ns := os.Getenv("NAMESPACE"); ns != "" {
		return nil
	}
	ns, err := nsFromDisplay()
	if err != nil {
		return errgo.Notef(err, "cannot get name space")
	}
	os.Setenv("NAMESPACE", ns)
	return nil
}

// nsFromDisplay follows src/lib9/getns.c.
func nsFromDisplay() (string, error) {
	disp := os.Getenv("DISPLAY")
	if disp == "" {
		disp = ":0.0"
	}
	// canonicalize: xxx:0.0 => xxx:0
	if i := strings.LastIndex(disp, ":"); i >= 0 {
		if strings.HasSuffix(disp, ".0") {
			disp = disp[:len(disp)-2]
		}
	}

	// turn /tmp/launch/:0 into _tmp_launch_:0 (OS X 10.5)
	disp = strings.Replace(disp, "/", "_", -1)

	u, err := user.Current()
	if err != nil {
		return "", errgo.Notef(err, "cannot get current user name")
	}
	ns := fmt.Sprintf("/tmp/ns.%s.%s", u.Username, disp)
	_, err = os.Stat(ns)
	if os.IsNotExist(err) {
		return "", errgo.New("no name space directory found")
	}
	if err != nil {
		return "", errgo.Notef(err, "cannot stat name space directory")
	}
	return ns, nil
}
