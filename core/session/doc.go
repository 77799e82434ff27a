// Package session models template editing as an explicit state machine:
// Clean, DirtyDefault (unsaved edits to a protected template) and
// DirtyCustom (unsaved edits to a regular template).
//
// The state machine exists to make the protected-template policy a
// first-class, testable behavior rather than a side effect of saving:
// DirtyDefault can never transition to Clean in place, only by saving under
// a fresh identifier, which produces an unprotected copy and leaves the
// shipped template untouched.
//
//	sess := session.New(store, doc)
//	_ = sess.SetField("N", "Another Recipient")
//
//	err := sess.Save("")            // ErrIdentifierRequired for protected docs
//	err = sess.Save("my-variant")   // writes my-variant, original untouched
package session
