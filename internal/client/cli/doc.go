// Package cli provides the interactive CodeShack command-line client.
//
// It wires configuration, the local session store, the API services and an
// interactive REPL. Commands map onto the pages of the web frontend:
//
//   - register / login / logout / whoami
//   - feed, doubts, doubt, ask, answer, comment, upvote
//   - space and post for the junior space
//   - profile, mentors, passwd
//   - admin, mentors-pending, approve, reject, users, ban, unban, activity, rm
//
// Typing "help" lists the commands available to the signed-in role. The REPL
// is started via App.Run, which blocks until the user exits or input ends.
package cli
