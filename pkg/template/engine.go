package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var builtInTemplates = map[string]*Template{
	"web-backend": {
		Name:        "web-backend",
		Description: "Express API + MongoDB + JWT auth",
		Files: map[string]string{
			"package.json": `{
  "name": "web-backend",
  "version": "1.0.0",
  "description": "A Node.js web backend",
  "main": "index.js",
  "scripts": {
    "start": "node index.js",
    "dev": "nodemon index.js",
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC",
  "dependencies": {
    "bcryptjs": "^2.4.3",
    "dotenv": "^16.4.5",
    "express": "^4.19.2",
    "jsonwebtoken": "^9.0.2",
    "mongoose": "^8.4.0"
  },
  "devDependencies": {
    "nodemon": "^3.1.0"
  }
}
`,
			"index.js": `require('dotenv').config();

const app = require('./src/app');
const connectDB = require('./src/config/db');

const PORT = process.env.PORT || 3000;

connectDB();

app.listen(PORT, () => {
  console.log('Server listening on port ' + PORT);
});
`,
			"src/app.js": `const express = require('express');

const authRoutes = require('./routes/auth');

const app = express();

app.use(express.json());
app.use(express.urlencoded({ extended: true }));

app.get('/health', (req, res) => {
  res.json({ status: 'ok' });
});

app.use('/api/auth', authRoutes);

app.use((err, req, res, next) => {
  console.error(err.stack);
  res.status(500).json({ error: 'Internal server error' });
});

module.exports = app;
`,
			"src/config/db.js": `const mongoose = require('mongoose');

const connectDB = async () => {
  try {
    const conn = await mongoose.connect(process.env.MONGO_URI);
    console.log('MongoDB connected: ' + conn.connection.host);
  } catch (err) {
    console.error('MongoDB connection error: ' + err.message);
    process.exit(1);
  }
};

module.exports = connectDB;
`,
			"src/models/User.js": `const mongoose = require('mongoose');
const bcrypt = require('bcryptjs');
const jwt = require('jsonwebtoken');

const userSchema = new mongoose.Schema(
  {
    name: { type: String, required: true, trim: true },
    email: { type: String, required: true, unique: true, lowercase: true },
    password: { type: String, required: true, minlength: 6, select: false }
  },
  { timestamps: true }
);

userSchema.pre('save', async function (next) {
  if (!this.isModified('password')) {
    return next();
  }
  const salt = await bcrypt.genSalt(10);
  this.password = await bcrypt.hash(this.password, salt);
  next();
});

userSchema.methods.matchPassword = function (entered) {
  return bcrypt.compare(entered, this.password);
};

userSchema.methods.generateToken = function () {
  return jwt.sign({ id: this._id }, process.env.JWT_SECRET, {
    expiresIn: process.env.JWT_EXPIRES_IN || '7d'
  });
};

module.exports = mongoose.model('User', userSchema);
`,
			"src/routes/auth.js": `const express = require('express');
const User = require('../models/User');
const protect = require('../middleware/auth');

const router = express.Router();

router.post('/register', async (req, res) => {
  try {
    const { name, email, password } = req.body;
    const user = await User.create({ name, email, password });
    res.status(201).json({ token: user.generateToken() });
  } catch (err) {
    res.status(400).json({ error: err.message });
  }
});

router.post('/login', async (req, res) => {
  const { email, password } = req.body;
  const user = await User.findOne({ email }).select('+password');
  if (!user || !(await user.matchPassword(password))) {
    return res.status(401).json({ error: 'Invalid credentials' });
  }
  res.json({ token: user.generateToken() });
});

router.get('/me', protect, (req, res) => {
  res.json({ user: req.user });
});

module.exports = router;
`,
			"src/middleware/auth.js": `const jwt = require('jsonwebtoken');
const User = require('../models/User');

const protect = async (req, res, next) => {
  const header = req.headers.authorization || '';
  if (!header.startsWith('Bearer ')) {
    return res.status(401).json({ error: 'Not authorized' });
  }

  try {
    const decoded = jwt.verify(header.split(' ')[1], process.env.JWT_SECRET);
    req.user = await User.findById(decoded.id);
    next();
  } catch (err) {
    res.status(401).json({ error: 'Not authorized' });
  }
};

module.exports = protect;
`,
			".env.example": "# Server\nPORT=3000\n\n# Database\nMONGO_URI=mongodb://localhost:27017/app\n\n# Auth\nJWT_SECRET=change-me\nJWT_EXPIRES_IN=7d\n",
			".gitignore":   "node_modules/\n.env\nnpm-debug.log*\ncoverage/\ndist/\n",
			"README.md":    "# Web Backend\n\nExpress + MongoDB starter with JWT authentication.\n\n## Getting Started\n\n1. Copy `.env.example` to `.env` and configure\n2. Install dependencies:\n   ```bash\n   npm install\n   ```\n3. Run the dev server:\n   ```bash\n   npm run dev\n   ```\n\n## Endpoints\n\n| Method | Path               | Description |\n|--------|--------------------|-------------|\n| GET    | /health            | Liveness check |\n| POST   | /api/auth/register | Create account |\n| POST   | /api/auth/login    | Issue JWT |\n| GET    | /api/auth/me       | Current user |\n",
		},
	},
}

type FileSystemEngine struct {
	templateDir string
}

// NewFileSystemEngine resolves templates from the built-in set first,
// then from subdirectories of templateDir.
func NewFileSystemEngine(templateDir string) *FileSystemEngine {
	return &FileSystemEngine{
		templateDir: templateDir,
	}
}

func NewEngine() *FileSystemEngine {
	return &FileSystemEngine{
		templateDir: "",
	}
}

func (e *FileSystemEngine) LoadTemplate(name string) (*Template, error) {
	if t, ok := builtInTemplates[name]; ok {
		return t, nil
	}

	if e.templateDir != "" {
		return e.loadFromDisk(name)
	}

	return nil, fmt.Errorf("template %q not found", name)
}

func (e *FileSystemEngine) loadFromDisk(name string) (*Template, error) {
	templatePath := filepath.Join(e.templateDir, name)

	info, err := os.Stat(templatePath)
	if err != nil {
		return nil, fmt.Errorf("template %q not found", name)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("template %q is not a directory", name)
	}

	files := make(map[string]string)

	err = filepath.Walk(templatePath, func(path string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(templatePath, path)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		files[relPath] = string(content)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to read template files: %w", err)
	}

	return &Template{
		Name:        name,
		Description: readDescription(files["README.md"]),
		Files:       files,
	}, nil
}

func readDescription(readme string) string {
	if readme == "" {
		return ""
	}
	lines := strings.Split(readme, "\n")
	if len(lines) > 0 {
		return strings.TrimPrefix(lines[0], "# ")
	}
	return ""
}

// ApplyTemplate writes every file of the named template under targetDir,
// creating parent directories and overwriting existing entries.
func (e *FileSystemEngine) ApplyTemplate(name, targetDir string) error {
	tmpl, err := e.LoadTemplate(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	for filePath, content := range tmpl.Files {
		fullPath := filepath.Join(targetDir, filePath)
		dir := filepath.Dir(fullPath)

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", filePath, err)
		}
	}

	return nil
}

func (e *FileSystemEngine) ListTemplates() []TemplateInfo {
	infos := make([]TemplateInfo, 0, len(builtInTemplates))

	for name, tmpl := range builtInTemplates {
		files := make([]string, 0, len(tmpl.Files))
		for f := range tmpl.Files {
			files = append(files, f)
		}
		infos = append(infos, TemplateInfo{
			Name:        name,
			Description: tmpl.Description,
			Files:       files,
		})
	}

	if e.templateDir != "" {
		entries, err := os.ReadDir(e.templateDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					found := false
					for _, info := range infos {
						if info.Name == entry.Name() {
							found = true
							break
						}
					}
					if !found {
						infos = append(infos, TemplateInfo{
							Name:        entry.Name(),
							Description: "Custom template",
							Files:       []string{},
						})
					}
				}
			}
		}
	}

	return infos
}
