package report

// Art assets for the report. These are opaque string tables: the composer
// only splits them into lines and aligns them, it never inspects glyphs.

// figure is the large braille portrait interleaved with the badge stack in
// the warning header. The leading empty line and trailing indent are part
// of the asset and survive line splitting.
const figure = `
⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⣠⣤⣄⡀⠀⠀⠀⣀⣠⣀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⠀⢀⣄⣀⣀⣀⠀⠀⠀⠀⠀⠀⣀⣠⣾⠏⠉⠙⢿⣶⡾⠟⠛⠉⠻⣷⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⢰⣿⠋⠉⠙⠛⠿⣶⣶⠿⠿⠟⢻⣿⠃⠀⢠⣴⣤⣿⣧⣄⡀⣀⣀⣿⡆⠀⠀⠀⠀⠀
⠀⠀⠀⠀⣿⡏⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢸⣏⠀⠀⢻⣧⡿⠋⠉⠉⢿⣟⠉⠙⠻⣧⠀⠀⠀⠀
⠀⠀⠀⠀⢻⣧⣀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠈⢿⣦⣤⣤⣿⣷⡀⠀⢀⣾⣿⡧⠀⢀⣿⠀⠀⠀⠀
⠀⠀⠀⠀⢘⣿⠏⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠉⠛⠿⣿⡛⠉⠁⣠⣿⡇⠀⠀⠀⠀
⠀⠀⠀⠀⣾⡏⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠈⠛⠿⠟⠋⠘⣿⠀⠀⠀⠀
⠀⠀⠀⢠⣿⠄⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠠⠀⠀⠀⠀⣤⡶⣿⡷⠶⠶⠆
⠀⣀⣠⣼⣿⣤⣤⠀⠀⠀⣠⣦⡀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⣾⣿⡄⠀⠀⠀⣀⣿⣇⡀⠀⠀
⠈⠉⠉⣴⠟⠻⣷⡄⠀⢰⣿⡿⠃⠀⠀⠀⠀⣴⣷⣤⠀⠀⠀⠀⠙⠻⠗⠀⠀⠀⢩⣿⠉⠉⠉⠀
⢀⣤⣶⣿⡄⠀⠸⣷⣀⣀⡀⠀⠀⠀⠀⠀⠀⠿⠶⠟⠀⠀⠀⠀⠀⠀⠀⠀⠀⣻⣿⣷⣤⣀⠀⠀
⢺⡇⠀⠈⠑⠀⠀⠉⠉⠙⠻⣷⡄⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⣀⣤⣾⠟⠁⠀⠈⠉⠀⠀
⠈⠻⢷⣦⡀⠀⣠⡶⠾⠆⠀⠘⣿⣤⣤⣤⣤⣤⣤⣤⣤⣤⣴⣶⢶⣿⡿⣭⡀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⢹⣇⠀⢿⣧⣠⣾⠇⢠⣿⠃⠉⢿⣍⣉⣉⣩⡟⠁⠸⣧⣼⡟⣁⣼⠇⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠈⢿⣦⣄⣉⣉⣠⣴⣿⣏⠀⠀⠀⠈⠉⠉⠁⠀⠀⠀⣹⡟⠛⠋⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⠀⠈⠙⠛⠛⠛⠉⠀⠹⣷⠦⣤⣀⣀⣀⣀⣤⡴⣺⠟⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠈⠳⢤⣈⡽⢿⣅⣤⠾⠃⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀
    `

// smallArt decorates the tail rows of the languages section.
var smallArt = []string{
	"⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢀⣀⣀⣀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀",
	"⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢇⠀⠃⣈⠇⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀",
	"⠀⠀⠀⠀⠀⠀⠀⣤⣤⣤⣄⣀⡀⠙⠞⠁⠀⠀⠀⣀⣀⣀⣀⠀⠀⠀⠀⠀",
	"⠀⠀⠀⠀⠀⠀⢰⡏⢻⣫⣿⣿⣿⣿⣿⣿⣿⣿⣿⣿⢿⠟⣿⠀⠀⠀⠀⠀",
	"⠀⠀⠀⠀⡐⡄⣸⣰⣿⣿⣿⣿⣿⣿⣿⣿⣿⣿⣿⣿⣷⣄⣿⠀⠀⠀⠀⠀",
	"⠀⠀⣀⠠⢝⡜⣿⣿⡟⢉⣭⡝⢿⣿⣿⣿⡟⣭⣭⠉⢻⣿⡿⡠⠒⠀⠀⠀",
	"⡴⣟⣿⣻⣆⢰⣿⣿⠀⢸⣿⣿⢸⣿⣿⣿⠙⣿⣿⠇⠈⣿⣿⠱⠭⠄⠀⠀",
	"⢷⣿⡀⣸⣿⡞⣿⣿⣄⠀⠉⠁⣼⣿⢿⣿⣧⠈⠁⠀⣰⣿⣿⣠⣴⣶⣦⣄",
	"⠈⠉⠉⠉⠉⠉⠉⠉⠉⠉⠉⠉⠙⠒⠓⠒⠛⠛⠛⠛⠛⠛⠓⠻⡏⣿⣿⠿",
}
