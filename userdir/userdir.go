// Package userdir is the authentication collaborator: a flat credential file
// with one "username:password" pair per line. The bookkeeping core only
// consults it at session start.
package userdir

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// reserved names cannot be registered: they collide with the sentinel guest
// owner, the default ledger, or common administrative names.
var reserved = []string{"local", "default", "admin", "root", "system", "guest"}

// forbidden characters would conflict with the owner-prefixed folder naming.
const forbidden = `- /\:*?"<>|`

// Directory is a user directory backed by a flat credential file. Lines
// beginning with '#' and blank lines are ignored.
type Directory struct {
	path  string
	users map[string]string // username -> password
}

// Open loads the credential file at path. A missing file yields an empty
// directory, not an error: registration will create it.
func Open(path string) (*Directory, error) {
	d := &Directory{path: path, users: make(map[string]string)}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, fmt.Errorf("could not open user file %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		username, password, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		username = strings.TrimSpace(username)
		if username == "" {
			continue
		}
		d.users[username] = strings.TrimSpace(password)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read user file %q: %w", path, err)
	}
	return d, nil
}

// Verify reports whether the username and password match a stored pair.
func (d *Directory) Verify(username, password string) bool {
	stored, ok := d.users[username]
	return ok && stored == password
}

// Exists reports whether the username is present in the directory.
func (d *Directory) Exists(username string) bool {
	_, ok := d.users[username]
	return ok
}

// ValidateUsername checks a candidate username: non-empty, not reserved, no
// characters that collide with folder naming, not already taken.
func (d *Directory) ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	for _, r := range reserved {
		if strings.EqualFold(username, r) {
			return fmt.Errorf("username %q is reserved", username)
		}
	}
	if i := strings.IndexAny(username, forbidden); i >= 0 {
		return fmt.Errorf("username cannot contain %q, use only letters, numbers, and underscores", username[i:i+1])
	}
	if d.Exists(username) {
		return fmt.Errorf("username %q already exists", username)
	}
	return nil
}

// Register appends a new user to the credential file. It fails if the
// username is invalid, reserved, or already present.
func (d *Directory) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if err := d.ValidateUsername(username); err != nil {
		return err
	}
	f, err := os.OpenFile(d.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("could not open user file %q: %w", d.path, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s:%s\n", username, password); err != nil {
		return fmt.Errorf("could not register user %q: %w", username, err)
	}
	d.users[username] = password
	return nil
}
