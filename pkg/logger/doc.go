// Package logger provides a thin factory around log/slog plus attribute
// constructors that keep log key naming consistent across the permission
// engine.
//
// New builds a *slog.Logger from an env-loadable Config (level, format,
// service name) with functional options layered on top. Attribute helpers
// such as UserID, Role, Group, and Project standardise the keys used when
// reporting authorization decisions and failures.
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(cfg, logger.WithAttr(slog.String("component", "permission")))
//	log.Warn("grant rejected",
//	    logger.UserID(userID),
//	    logger.Role(roleName),
//	    logger.Group(groupName))
package logger
