// Package environment resolves environment overlays of a configuration document.
//
// An environment-aware document has two reserved top-level keys:
//
//	default:              # always-consulted fallback section
//	  db:
//	    host: localhost
//	environments:
//	  staging:
//	    db:
//	      host: staging.internal
//	  development:
//	    extends: staging  # inherit staging, override per leaf key
//	    db:
//	      user: dev
//	  prod:
//	    alias: production # pure redirect, other keys ignored
//
// Resolve follows alias and extends links and returns a View of the
// effective environment tree. The default section is not merged into the
// view; callers consult it separately (see LookupDefault).
//
// Errors:
//   - ErrUnknownEnvironment: the requested environment is not declared
//   - ErrResolution: a link targets an undeclared environment, a chain loops,
//     or an entry is malformed
package environment
