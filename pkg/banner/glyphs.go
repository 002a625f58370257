package banner

// afkRows is the animated "AFK" banner. The last row is intentionally blank
// so the scrolling window keeps a margin under the letters.
var afkRows = []string{
	`                ______________    __    ___`,
	`       /\      |__    ______  |  |  |  /  /`,
	`      /  \        |  |      |_|  |  | /  / `,
	`     /    \       |  |    _      |  |/  /  `,
	`    /  /\  \      |  |___| |     |  '  /   `,
	`   /  /__\  \     |   _____|     |  .  \   `,
	`  /  ______  \    |  |           |  |\  \  `,
	` /  /      \  \   |  |           |  | \  \ `,
	`/__/        \__\  |__|           |__|  \__\`,
	`                                           `,
}

// bakRows is the static banner printed once the user is back.
var bakRows = []string{
	` _________                       __    ___ `,
	`|   ____  \          /\         |  |  /  / `,
	`|  |    \  |        /  \        |  | /  /  `,
	`|  |____/  |       /    \       |  |/  /   `,
	`|         /       /  /\  \      |  '  /    `,
	`|   ____  \      /  /__\  \     |  .  \    `,
	`|  |    \  |    /  ______  \    |  |\  \   `,
	`|  |____/  |   /  /      \  \   |  | \  \  `,
	`|_________/   /__/        \__\  |__|  \__\ `,
}

// AFK returns the glyph block animated while the user is away.
func AFK() Glyph {
	return NewGlyph(afkRows)
}

// BAK returns the glyph block shown once the user is back.
func BAK() Glyph {
	return NewGlyph(bakRows)
}
