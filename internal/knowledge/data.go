package knowledge

// categoryMembers maps each category to the base commands that belong to
// it. Commands listed here are categorized even when they have no full
// entry in commandDB.
var categoryMembers = map[string][]string{
	CategoryFileSystem: {
		"ls", "cd", "pwd", "mkdir", "rmdir", "rm", "cp", "mv", "touch",
		"cat", "less", "more", "head", "tail", "file", "stat", "ln",
		"readlink", "realpath", "basename", "dirname", "tree", "du", "df",
		"mount", "umount", "lsblk", "blkid",
	},
	CategoryTextProcessing: {
		"grep", "egrep", "fgrep", "sed", "awk", "gawk", "cut", "paste",
		"sort", "uniq", "wc", "tr", "tee", "xargs", "split", "join",
		"comm", "diff", "patch", "cmp", "od", "hexdump", "xxd", "strings",
		"fold", "fmt", "nl", "column", "rev", "shuf", "tac",
	},
	CategoryGit: {
		"git", "gh", "hub", "tig", "gitk", "git-lfs",
	},
	CategoryPackageMgmt: {
		"apt", "apt-get", "apt-cache", "dpkg", "snap", "flatpak",
		"yum", "dnf", "rpm", "pacman", "brew", "port", "apk",
		"npm", "npx", "yarn", "pnpm", "bun",
		"pip", "pip3", "pipx", "conda", "poetry", "uv",
		"cargo", "rustup", "gem", "bundle", "composer",
		"mvn", "gradle", "dotnet",
	},
	CategoryProcessSystem: {
		"ps", "top", "htop", "btop", "kill", "killall", "pkill", "pgrep",
		"nice", "renice", "nohup", "bg", "fg", "jobs", "disown",
		"screen", "tmux", "systemctl", "service", "journalctl", "dmesg",
		"uptime", "free", "vmstat", "iostat", "lsof", "fuser", "strace",
		"time", "timeout", "watch", "sleep", "crontab",
		"uname", "hostname", "date", "env", "printenv",
	},
	CategoryNetworking: {
		"curl", "wget", "httpie", "http", "ssh", "scp", "sftp", "rsync",
		"ftp", "nc", "netcat", "ncat", "socat", "telnet",
		"ping", "traceroute", "mtr", "dig", "nslookup", "host",
		"ip", "ifconfig", "route", "netstat", "ss", "arp",
		"iptables", "nft", "ufw", "tcpdump", "nmap", "whois", "openssl",
	},
	CategoryPermissions: {
		"chmod", "chown", "chgrp", "umask", "getfacl", "setfacl",
		"sudo", "su", "doas", "chroot", "id", "whoami", "groups",
		"users", "who", "w", "last", "useradd", "usermod", "passwd",
	},
	CategoryCompression: {
		"tar", "gzip", "gunzip", "bzip2", "bunzip2", "xz", "unxz",
		"zip", "unzip", "7z", "zstd", "lz4", "zcat", "bzcat", "xzcat",
	},
	CategorySearch: {
		"find", "locate", "updatedb", "which", "whereis", "type",
		"apropos", "whatis", "man", "info", "help",
		"ag", "rg", "ack", "fzf", "fd", "exa", "lsd", "ranger",
	},
	CategoryDevelopment: {
		"make", "cmake", "ninja", "gcc", "g++", "clang", "cc", "ld",
		"python", "python3", "node", "deno", "ruby", "perl", "php",
		"java", "javac", "go", "rustc", "swift",
		"gdb", "lldb", "valgrind", "objdump", "nm", "ldd",
		"docker", "docker-compose", "podman", "kubectl", "helm",
		"terraform", "ansible", "vagrant",
		"code", "vim", "nvim", "nano", "emacs", "vi",
		"jq", "yq", "xmllint",
	},
	CategoryShellBuiltins: {
		"echo", "printf", "read", "source", ".", "exec", "eval", "set",
		"unset", "export", "declare", "local", "readonly", "alias",
		"unalias", "builtin", "command", "hash", "pushd", "popd", "dirs",
		"history", "true", "false", "test", "[", "[[", "exit", "return",
		"break", "continue", "shift", "getopts", "trap", "ulimit", "let",
		":", "wait",
	},
}

// commandDB holds the full entries: description, flag meanings, and
// example usage patterns. Curated for quiz generation, so every entry
// carries at least a description and most carry several flags.
var commandDB = map[string]Entry{
	"ls": {
		Name:        "ls",
		Category:    CategoryFileSystem,
		Description: "List directory contents with various formatting and filtering options",
		Flags: map[string]string{
			"-l": "Long format with permissions, owner, size, and modification time",
			"-a": "Show all files including hidden (dotfiles)",
			"-h": "Human-readable sizes (1K, 234M, 2G)",
			"-R": "Recursive listing of subdirectories",
			"-t": "Sort by modification time, newest first",
			"-r": "Reverse sort order",
			"-S": "Sort by file size, largest first",
			"-d": "List directories themselves, not their contents",
			"-1": "One file per line",
		},
		Patterns: []string{"ls -la", "ls -lah", "ls -lt", "ls -d */"},
	},
	"cd": {
		Name:        "cd",
		Category:    CategoryFileSystem,
		Description: "Change the current working directory",
		Flags: map[string]string{
			"-":  "Change to previous directory ($OLDPWD)",
			"-P": "Use physical directory structure (resolve symlinks)",
			"-L": "Use logical directory structure (follow symlinks, default)",
		},
		Patterns: []string{"cd ~", "cd ..", "cd -"},
	},
	"pwd": {
		Name:        "pwd",
		Category:    CategoryFileSystem,
		Description: "Print the current working directory path",
		Flags: map[string]string{
			"-L": "Print logical path (with symlinks)",
			"-P": "Print physical path (resolved symlinks)",
		},
		Patterns: []string{"pwd"},
	},
	"mkdir": {
		Name:        "mkdir",
		Category:    CategoryFileSystem,
		Description: "Create directories",
		Flags: map[string]string{
			"-p": "Create parent directories as needed, no error if exists",
			"-v": "Verbose, print each directory created",
			"-m": "Set permission mode (like chmod)",
		},
		Patterns: []string{"mkdir -p src/components/ui", "mkdir -pv new/nested/dir"},
	},
	"rm": {
		Name:        "rm",
		Category:    CategoryFileSystem,
		Description: "Remove files or directories",
		Flags: map[string]string{
			"-r": "Remove directories and their contents recursively",
			"-f": "Force removal without prompting",
			"-i": "Prompt before each removal",
			"-v": "Verbose, print each file removed",
			"-d": "Remove empty directories",
		},
		Patterns: []string{"rm -rf build/", "rm -i important.txt"},
	},
	"cp": {
		Name:        "cp",
		Category:    CategoryFileSystem,
		Description: "Copy files and directories",
		Flags: map[string]string{
			"-r": "Copy directories recursively",
			"-i": "Prompt before overwriting",
			"-f": "Force overwrite without prompting",
			"-v": "Verbose output",
			"-p": "Preserve mode, ownership, and timestamps",
			"-a": "Archive mode (preserve everything, recurse)",
			"-n": "Do not overwrite existing files",
			"-u": "Copy only when the source is newer",
		},
		Patterns: []string{"cp -r src/ backup/", "cp -av dir1 dir2"},
	},
	"mv": {
		Name:        "mv",
		Category:    CategoryFileSystem,
		Description: "Move or rename files and directories",
		Flags: map[string]string{
			"-i": "Prompt before overwriting",
			"-f": "Force overwrite without prompting",
			"-n": "Do not overwrite existing files",
			"-v": "Verbose output",
			"-b": "Make a backup of each existing destination file",
		},
		Patterns: []string{"mv old.txt new.txt", "mv -i *.log logs/"},
	},
	"cat": {
		Name:        "cat",
		Category:    CategoryFileSystem,
		Description: "Concatenate files and print them to standard output",
		Flags: map[string]string{
			"-n": "Number all output lines",
			"-b": "Number non-blank lines only",
			"-s": "Squeeze repeated blank lines into one",
			"-A": "Show all non-printing characters",
			"-E": "Show $ at end of each line",
		},
		Patterns: []string{"cat file.txt", "cat -n script.sh"},
	},
	"head": {
		Name:        "head",
		Category:    CategoryFileSystem,
		Description: "Output the first part of files",
		Flags: map[string]string{
			"-n": "Number of lines to print",
			"-c": "Number of bytes to print",
			"-q": "Never print file name headers",
		},
		Patterns: []string{"head -n 20 file.log", "head -3 results.txt"},
	},
	"tail": {
		Name:        "tail",
		Category:    CategoryFileSystem,
		Description: "Output the last part of files",
		Flags: map[string]string{
			"-n": "Number of lines to print",
			"-f": "Follow the file, printing data as it is appended",
			"-c": "Number of bytes to print",
			"-F": "Follow by name, reopening rotated files",
		},
		Patterns: []string{"tail -f /var/log/syslog", "tail -n 100 app.log"},
	},
	"touch": {
		Name:        "touch",
		Category:    CategoryFileSystem,
		Description: "Update file timestamps, creating empty files as needed",
		Flags: map[string]string{
			"-a": "Change only the access time",
			"-m": "Change only the modification time",
			"-c": "Do not create files that do not exist",
		},
		Patterns: []string{"touch notes.md", "touch -c existing.txt"},
	},
	"ln": {
		Name:        "ln",
		Category:    CategoryFileSystem,
		Description: "Create hard or symbolic links between files",
		Flags: map[string]string{
			"-s": "Create a symbolic link instead of a hard link",
			"-f": "Remove an existing destination file first",
			"-v": "Verbose output",
		},
		Patterns: []string{"ln -s /usr/local/bin/tool tool"},
	},
	"du": {
		Name:        "du",
		Category:    CategoryFileSystem,
		Description: "Estimate file and directory space usage",
		Flags: map[string]string{
			"-h": "Human-readable sizes",
			"-s": "Summary only (total for each argument)",
			"-a": "Show all files, not just directories",
			"-c": "Produce a grand total",
		},
		Patterns: []string{"du -sh *", "du -sh */ | sort -h"},
	},
	"df": {
		Name:        "df",
		Category:    CategoryFileSystem,
		Description: "Report filesystem disk space usage",
		Flags: map[string]string{
			"-h": "Human-readable sizes",
			"-T": "Show filesystem type",
			"-i": "Show inode information instead of block usage",
		},
		Patterns: []string{"df -h", "df -hT"},
	},
	"grep": {
		Name:        "grep",
		Category:    CategoryTextProcessing,
		Description: "Search text for lines matching a pattern",
		Flags: map[string]string{
			"-i": "Case-insensitive matching",
			"-r": "Search directories recursively",
			"-n": "Prefix matches with line numbers",
			"-v": "Invert match, print non-matching lines",
			"-c": "Count matching lines only",
			"-l": "Print only names of files with matches",
			"-w": "Match whole words only",
			"-E": "Use extended regular expressions",
			"-o": "Print only the matching part of each line",
			"-A": "Print lines of context after each match",
			"-B": "Print lines of context before each match",
		},
		Patterns: []string{"grep -rn 'TODO' src/", "grep -i error app.log", "ps aux | grep node"},
	},
	"sed": {
		Name:        "sed",
		Category:    CategoryTextProcessing,
		Description: "Stream editor for filtering and transforming text",
		Flags: map[string]string{
			"-i": "Edit files in place",
			"-e": "Add an editing command to run",
			"-n": "Suppress automatic printing of lines",
			"-E": "Use extended regular expressions",
		},
		Patterns: []string{"sed -i 's/old/new/g' file.txt", "sed -n '1,10p' file"},
	},
	"awk": {
		Name:        "awk",
		Category:    CategoryTextProcessing,
		Description: "Pattern scanning and field-oriented text processing language",
		Flags: map[string]string{
			"-F": "Set the input field separator",
			"-v": "Assign a variable before execution",
			"-f": "Read the program from a file",
		},
		Patterns: []string{"awk '{print $1}' access.log", "awk -F: '{print $1}' /etc/passwd"},
	},
	"cut": {
		Name:        "cut",
		Category:    CategoryTextProcessing,
		Description: "Remove sections from each line of input",
		Flags: map[string]string{
			"-d": "Set the field delimiter",
			"-f": "Select fields to print",
			"-c": "Select character positions to print",
		},
		Patterns: []string{"cut -d: -f1 /etc/passwd", "cut -c1-8 ids.txt"},
	},
	"sort": {
		Name:        "sort",
		Category:    CategoryTextProcessing,
		Description: "Sort lines of text",
		Flags: map[string]string{
			"-n": "Sort numerically",
			"-r": "Reverse the sort order",
			"-k": "Sort by a specific field",
			"-u": "Output only unique lines",
			"-t": "Set the field delimiter",
			"-h": "Sort human-readable sizes (2K, 1G)",
		},
		Patterns: []string{"sort -u names.txt", "du -sh * | sort -h"},
	},
	"uniq": {
		Name:        "uniq",
		Category:    CategoryTextProcessing,
		Description: "Filter or report adjacent repeated lines",
		Flags: map[string]string{
			"-c": "Prefix lines with their occurrence count",
			"-d": "Print only duplicated lines",
			"-u": "Print only unique lines",
			"-i": "Ignore case when comparing",
		},
		Patterns: []string{"sort names.txt | uniq -c"},
	},
	"wc": {
		Name:        "wc",
		Category:    CategoryTextProcessing,
		Description: "Count lines, words, and bytes in input",
		Flags: map[string]string{
			"-l": "Count lines",
			"-w": "Count words",
			"-c": "Count bytes",
			"-m": "Count characters",
		},
		Patterns: []string{"wc -l *.go", "grep -c '' file"},
	},
	"tr": {
		Name:        "tr",
		Category:    CategoryTextProcessing,
		Description: "Translate or delete characters from standard input",
		Flags: map[string]string{
			"-d": "Delete characters in the set",
			"-s": "Squeeze repeated characters",
			"-c": "Complement the first set",
		},
		Patterns: []string{"tr 'a-z' 'A-Z' < file", "tr -d '\\r' < dos.txt"},
	},
	"tee": {
		Name:        "tee",
		Category:    CategoryTextProcessing,
		Description: "Copy standard input to standard output and to files",
		Flags: map[string]string{
			"-a": "Append to files instead of overwriting",
		},
		Patterns: []string{"make 2>&1 | tee build.log"},
	},
	"xargs": {
		Name:        "xargs",
		Category:    CategoryTextProcessing,
		Description: "Build and execute command lines from standard input",
		Flags: map[string]string{
			"-0": "Input items are separated by null bytes",
			"-n": "Use at most this many arguments per command",
			"-I": "Replace occurrences of a placeholder with the input",
			"-P": "Run up to this many processes in parallel",
		},
		Patterns: []string{"find . -name '*.tmp' -print0 | xargs -0 rm"},
	},
	"diff": {
		Name:        "diff",
		Category:    CategoryTextProcessing,
		Description: "Compare files line by line",
		Flags: map[string]string{
			"-u": "Unified diff format",
			"-r": "Recursively compare directories",
			"-q": "Report only whether files differ",
			"-w": "Ignore all whitespace",
		},
		Patterns: []string{"diff -u old.txt new.txt"},
	},
	"find": {
		Name:        "find",
		Category:    CategorySearch,
		Description: "Search for files in a directory hierarchy with powerful filtering",
		Flags: map[string]string{
			"-name":     "Match filename pattern (case-sensitive)",
			"-iname":    "Match filename pattern (case-insensitive)",
			"-type":     "File type: f=file, d=directory, l=symlink",
			"-size":     "File size (+10M = larger than 10MB)",
			"-mtime":    "Modified time in days (-1 = last 24h)",
			"-exec":     "Execute a command on each match",
			"-delete":   "Delete matching files",
			"-maxdepth": "Maximum directory depth to search",
		},
		Patterns: []string{"find . -name '*.py'", "find . -type f -mtime -1", "find . -name '*.log' -delete"},
	},
	"which": {
		Name:        "which",
		Category:    CategorySearch,
		Description: "Locate a command's executable in PATH",
		Flags: map[string]string{
			"-a": "Print all matching executables, not just the first",
		},
		Patterns: []string{"which python3"},
	},
	"man": {
		Name:        "man",
		Category:    CategorySearch,
		Description: "Display the manual page for a command",
		Flags: map[string]string{
			"-k": "Search page descriptions for a keyword",
			"-f": "Show short descriptions (like whatis)",
		},
		Patterns: []string{"man tar", "man -k socket"},
	},
	"rg": {
		Name:        "rg",
		Category:    CategorySearch,
		Description: "Recursively search directories for a regex pattern, respecting gitignore",
		Flags: map[string]string{
			"-i": "Case-insensitive search",
			"-l": "Print only file names with matches",
			"-n": "Show line numbers",
			"-t": "Only search files of the given type",
			"-g": "Include or exclude files matching a glob",
		},
		Patterns: []string{"rg -n 'func main' -t go"},
	},
	"chmod": {
		Name:        "chmod",
		Category:    CategoryPermissions,
		Description: "Change file mode bits (permissions)",
		Flags: map[string]string{
			"-R": "Change permissions recursively",
			"-v": "Verbose, report every file processed",
			"-c": "Report only when a change is made",
		},
		Patterns: []string{"chmod +x deploy.sh", "chmod -R 755 /var/www"},
	},
	"chown": {
		Name:        "chown",
		Category:    CategoryPermissions,
		Description: "Change file owner and group",
		Flags: map[string]string{
			"-R": "Change ownership recursively",
			"-v": "Verbose output",
			"-h": "Affect symbolic links instead of their targets",
		},
		Patterns: []string{"chown -R app:app /srv/app"},
	},
	"sudo": {
		Name:        "sudo",
		Category:    CategoryPermissions,
		Description: "Execute a command as another user, typically root",
		Flags: map[string]string{
			"-u": "Run the command as the specified user",
			"-i": "Run a login shell as the target user",
			"-E": "Preserve the invoking user's environment",
			"-n": "Non-interactive, fail instead of prompting",
		},
		Patterns: []string{"sudo systemctl restart nginx", "sudo -u postgres psql"},
	},
	"tar": {
		Name:        "tar",
		Category:    CategoryCompression,
		Description: "Create, list, and extract archive files",
		Flags: map[string]string{
			"-c": "Create a new archive",
			"-x": "Extract files from an archive",
			"-t": "List archive contents",
			"-v": "Verbose output",
			"-f": "Use the given archive file",
			"-z": "Filter through gzip",
			"-j": "Filter through bzip2",
			"-C": "Change to directory before operating",
		},
		Patterns: []string{"tar -czvf backup.tar.gz project/", "tar -xzf release.tar.gz -C /opt"},
	},
	"gzip": {
		Name:        "gzip",
		Category:    CategoryCompression,
		Description: "Compress files with the gzip algorithm",
		Flags: map[string]string{
			"-d": "Decompress instead of compress",
			"-k": "Keep the input file",
			"-9": "Best compression (slowest)",
			"-l": "List compression statistics",
		},
		Patterns: []string{"gzip -k large.log", "gzip -d dump.sql.gz"},
	},
	"zip": {
		Name:        "zip",
		Category:    CategoryCompression,
		Description: "Package and compress files into a zip archive",
		Flags: map[string]string{
			"-r": "Recurse into directories",
			"-q": "Quiet operation",
			"-e": "Encrypt the archive contents",
		},
		Patterns: []string{"zip -r site.zip public/"},
	},
	"unzip": {
		Name:        "unzip",
		Category:    CategoryCompression,
		Description: "Extract files from a zip archive",
		Flags: map[string]string{
			"-l": "List archive contents without extracting",
			"-o": "Overwrite existing files without prompting",
			"-d": "Extract into the given directory",
		},
		Patterns: []string{"unzip release.zip -d /opt/app"},
	},
	"ps": {
		Name:        "ps",
		Category:    CategoryProcessSystem,
		Description: "Report a snapshot of current processes",
		Flags: map[string]string{
			"-e": "Show all processes",
			"-f": "Full-format listing",
			"-u": "Show processes for the given user",
			"aux": "BSD-style listing of every process with owner and usage",
		},
		Patterns: []string{"ps aux | grep python", "ps -ef"},
	},
	"kill": {
		Name:        "kill",
		Category:    CategoryProcessSystem,
		Description: "Send a signal to a process",
		Flags: map[string]string{
			"-9":  "Force kill (SIGKILL, cannot be caught)",
			"-15": "Graceful termination (SIGTERM, the default)",
			"-l":  "List available signal names",
		},
		Patterns: []string{"kill -9 12345", "kill -l"},
	},
	"top": {
		Name:        "top",
		Category:    CategoryProcessSystem,
		Description: "Display a live, sorted view of running processes",
		Flags: map[string]string{
			"-b": "Batch mode, suitable for piping",
			"-n": "Number of iterations before exiting",
			"-p": "Monitor only the given PIDs",
		},
		Patterns: []string{"top -b -n 1 | head -20"},
	},
	"systemctl": {
		Name:        "systemctl",
		Category:    CategoryProcessSystem,
		Description: "Control the systemd system and service manager",
		Flags: map[string]string{
			"--now":    "Also start or stop the unit when enabling or disabling",
			"--user":   "Operate on the per-user service manager",
			"--failed": "List only units in a failed state",
		},
		Patterns: []string{"systemctl status nginx", "systemctl restart app.service"},
	},
	"curl": {
		Name:        "curl",
		Category:    CategoryNetworking,
		Description: "Transfer data from or to a server over HTTP and other protocols",
		Flags: map[string]string{
			"-o": "Write output to the named file",
			"-O": "Save with the remote file's name",
			"-L": "Follow redirects",
			"-s": "Silent mode, no progress output",
			"-v": "Verbose protocol trace",
			"-H": "Add a request header",
			"-X": "Use the given HTTP method",
			"-d": "Send the given data in a POST body",
			"-I": "Fetch headers only",
			"-u": "Supply user:password credentials",
		},
		Patterns: []string{"curl -sL https://example.com/install.sh | sh", "curl -X POST -d '{}' -H 'Content-Type: application/json' localhost:8080"},
	},
	"wget": {
		Name:        "wget",
		Category:    CategoryNetworking,
		Description: "Non-interactive network downloader",
		Flags: map[string]string{
			"-O": "Write the document to the named file",
			"-q": "Quiet, no output",
			"-c": "Continue a partially downloaded file",
			"-r": "Recursive download",
			"-P": "Save files under the given directory",
		},
		Patterns: []string{"wget -q https://example.com/pkg.tar.gz"},
	},
	"ssh": {
		Name:        "ssh",
		Category:    CategoryNetworking,
		Description: "OpenSSH remote login client",
		Flags: map[string]string{
			"-p": "Connect to the given port",
			"-i": "Use the given identity (private key) file",
			"-v": "Verbose debugging output",
			"-L": "Forward a local port to a remote address",
			"-N": "Do not execute a remote command (forwarding only)",
			"-f": "Go to background after authentication",
		},
		Patterns: []string{"ssh -i ~/.ssh/deploy user@host", "ssh -L 8080:localhost:80 host"},
	},
	"scp": {
		Name:        "scp",
		Category:    CategoryNetworking,
		Description: "Copy files between hosts over SSH",
		Flags: map[string]string{
			"-r": "Recursively copy directories",
			"-P": "Connect to the given port",
			"-i": "Use the given identity file",
			"-C": "Enable compression",
		},
		Patterns: []string{"scp -r dist/ user@host:/srv/app"},
	},
	"rsync": {
		Name:        "rsync",
		Category:    CategoryNetworking,
		Description: "Fast, incremental file transfer and synchronization",
		Flags: map[string]string{
			"-a": "Archive mode: recurse and preserve attributes",
			"-v": "Verbose output",
			"-z": "Compress data during transfer",
			"-n": "Dry run, show what would be transferred",
			"--delete": "Delete files in the destination that are absent from the source",
		},
		Patterns: []string{"rsync -avz src/ host:/backup/", "rsync -an --delete a/ b/"},
	},
	"ping": {
		Name:        "ping",
		Category:    CategoryNetworking,
		Description: "Send ICMP echo requests to a network host",
		Flags: map[string]string{
			"-c": "Stop after this many packets",
			"-i": "Seconds between packets",
			"-W": "Timeout waiting for each reply",
		},
		Patterns: []string{"ping -c 4 8.8.8.8"},
	},
	"git": {
		Name:        "git",
		Category:    CategoryGit,
		Description: "Distributed version control: track, branch, and share code history",
		Flags: map[string]string{
			"-m":        "Use the given commit message",
			"-a":        "Stage all modified tracked files before committing",
			"-b":        "Create and switch to a new branch",
			"-u":        "Set the upstream tracking branch while pushing",
			"--amend":   "Replace the previous commit",
			"--oneline": "Condense log output to one line per commit",
			"--hard":    "Reset working tree and index to the target commit",
			"-f":        "Force the operation",
		},
		Patterns: []string{"git status", "git log --oneline -5", "git commit -am 'fix'", "git push -u origin main"},
	},
	"docker": {
		Name:        "docker",
		Category:    CategoryDevelopment,
		Description: "Build and run applications in containers",
		Flags: map[string]string{
			"-d":     "Run the container detached in the background",
			"-p":     "Publish a container port to the host",
			"-v":     "Bind-mount a volume",
			"-it":    "Interactive terminal session",
			"--rm":   "Remove the container when it exits",
			"--name": "Assign a name to the container",
		},
		Patterns: []string{"docker run -d -p 8080:80 nginx", "docker ps -a", "docker exec -it app sh"},
	},
	"make": {
		Name:        "make",
		Category:    CategoryDevelopment,
		Description: "Run build targets defined in a Makefile",
		Flags: map[string]string{
			"-j": "Run this many jobs in parallel",
			"-n": "Print commands without executing them",
			"-C": "Change to the given directory first",
			"-B": "Unconditionally rebuild all targets",
		},
		Patterns: []string{"make -j8", "make -C build install"},
	},
	"jq": {
		Name:        "jq",
		Category:    CategoryDevelopment,
		Description: "Command-line JSON processor",
		Flags: map[string]string{
			"-r": "Output raw strings instead of JSON-quoted",
			"-c": "Compact output, one JSON value per line",
			"-s": "Read all inputs into a single array",
			"-e": "Set exit status from the output value",
		},
		Patterns: []string{"curl -s api/items | jq '.data[]'", "jq -r '.name' package.json"},
	},
	"python3": {
		Name:        "python3",
		Category:    CategoryDevelopment,
		Description: "Run the Python 3 interpreter",
		Flags: map[string]string{
			"-m": "Run a library module as a script",
			"-c": "Execute the given program text",
			"-i": "Enter interactive mode after running the script",
			"-u": "Unbuffered stdout and stderr",
		},
		Patterns: []string{"python3 -m venv .venv", "python3 -m http.server 8000"},
	},
	"go": {
		Name:        "go",
		Category:    CategoryDevelopment,
		Description: "Manage Go source code: build, test, and fetch modules",
		Flags: map[string]string{
			"-v":     "Verbose: print package names as they are processed",
			"-race":  "Enable the data race detector",
			"-run":   "Run only tests matching the pattern",
			"-count": "Run each test this many times",
			"-o":     "Write the resulting binary to the named file",
		},
		Patterns: []string{"go test ./...", "go build -o bin/app ./cmd/app", "go vet ./..."},
	},
	"npm": {
		Name:        "npm",
		Category:    CategoryPackageMgmt,
		Description: "Node.js package manager",
		Flags: map[string]string{
			"-g":           "Operate on the global installation",
			"-D":           "Save as a development dependency",
			"--production": "Skip development dependencies",
		},
		Patterns: []string{"npm install", "npm run build", "npm install -D typescript"},
	},
	"pip": {
		Name:        "pip",
		Category:    CategoryPackageMgmt,
		Description: "Python package installer",
		Flags: map[string]string{
			"-r": "Install from the given requirements file",
			"-U": "Upgrade packages to the newest version",
			"-e": "Install a project in editable mode",
			"-q": "Quiet output",
		},
		Patterns: []string{"pip install -r requirements.txt", "pip install -U pip"},
	},
	"apt": {
		Name:        "apt",
		Category:    CategoryPackageMgmt,
		Description: "Debian/Ubuntu package management front end",
		Flags: map[string]string{
			"-y": "Assume yes to all prompts",
			"-q": "Quiet, suitable for logs",
		},
		Patterns: []string{"apt update && apt install -y curl"},
	},
	"echo": {
		Name:        "echo",
		Category:    CategoryShellBuiltins,
		Description: "Write arguments to standard output",
		Flags: map[string]string{
			"-n": "Do not output a trailing newline",
			"-e": "Enable interpretation of backslash escapes",
		},
		Patterns: []string{"echo $PATH", "echo -n 'no newline'"},
	},
	"export": {
		Name:        "export",
		Category:    CategoryShellBuiltins,
		Description: "Mark shell variables for export to child processes",
		Flags: map[string]string{
			"-p": "Print all exported variables",
			"-n": "Remove the export property from a variable",
		},
		Patterns: []string{"export PATH=$PATH:~/bin", "export EDITOR=vim"},
	},
	"history": {
		Name:        "history",
		Category:    CategoryShellBuiltins,
		Description: "Display or manipulate the shell command history list",
		Flags: map[string]string{
			"-c": "Clear the history list",
			"-d": "Delete the history entry at the given position",
		},
		Patterns: []string{"history | tail -20"},
	},
	"xxd": {
		Name:        "xxd",
		Category:    CategoryTextProcessing,
		Description: "Make a hex dump of input, or reverse one back to binary",
		Flags: map[string]string{
			"-r": "Reverse: convert a hex dump back to binary",
			"-l": "Stop after this many bytes",
			"-g": "Group output bytes in this size",
		},
		Patterns: []string{"xxd header.bin | head"},
	},
}
