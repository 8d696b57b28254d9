package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(render, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(dialects, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
